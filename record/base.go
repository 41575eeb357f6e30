package record

const (
	// BaseSize is the size in bytes of the base record
	BaseSize = 836

	// TeamSize is the number of party slots
	TeamSize      = 6
	// InventorySize is the number of inventory slots
	InventorySize = 200
)

// InventoryItem is a single inventory slot
type InventoryItem struct {
	Thing int16
	Count int16
}

// Base is the global game state; where the party is, the boat and the
// shared inventory
type Base struct {
	Boat      int16
	Unused    int16
	X         int16
	Y         int16
	X1        int16
	Y1        int16
	Direction int16

	BoatX         int16
	BoatY         int16
	BoatX1        int16
	BoatY1        int16
	BoatDirection int16

	Team      [TeamSize]int16
	Inventory [InventorySize]InventoryItem
}

// Base decodes the base record
func (d *Decoder) Base(b []byte) (*Base, error) {
	r, err := d.reader(b, BaseSize)
	if err != nil {
		return nil, err
	}

	s := new(Base)
	s.Boat = r.int16()
	s.Unused = r.int16()
	s.X = r.int16()
	s.Y = r.int16()
	s.X1 = r.int16()
	s.Y1 = r.int16()
	s.Direction = r.int16()
	s.BoatX = r.int16()
	s.BoatY = r.int16()
	s.BoatX1 = r.int16()
	s.BoatY1 = r.int16()
	s.BoatDirection = r.int16()
	r.int16s(s.Team[:])
	for i := range s.Inventory {
		s.Inventory[i].Thing = r.int16()
		s.Inventory[i].Count = r.int16()
	}

	return s, nil
}

// DecodeBase decodes the base record with UTF-8 text
func DecodeBase(b []byte) (*Base, error) {
	return defaultDecoder.Base(b)
}
