package record

const (
	// SceneSize is the size in bytes of a scene record
	SceneSize = 62

	sceneExits = 3
)

// Scene describes one of the sub-maps
type Scene struct {
	ID             int16
	Name           string
	ExitMusic      int16
	EntryMusic     int16
	JumpScene      int16
	EntryCondition int16

	OuterEntryX1 int16
	OuterEntryY1 int16
	OuterEntryX2 int16
	OuterEntryY2 int16

	EntryX int16
	EntryY int16

	// The three exit x coordinates are stored before the three exit y
	// coordinates
	ExitX [sceneExits]int16
	ExitY [sceneExits]int16

	JumpX1 int16
	JumpY1 int16
	JumpX2 int16
	JumpY2 int16
}

// IsExit reports whether x, y is one of the scene exits
func (s *Scene) IsExit(x, y int) bool {
	for i := range s.ExitX {
		if int(s.ExitX[i]) == x && int(s.ExitY[i]) == y {
			return true
		}
	}
	return false
}

// Scene decodes a scene record
func (d *Decoder) Scene(b []byte) (*Scene, error) {
	r, err := d.reader(b, SceneSize)
	if err != nil {
		return nil, err
	}

	s := new(Scene)
	s.ID = r.int16()
	s.Name = r.text(nameSize)
	s.ExitMusic = r.int16()
	s.EntryMusic = r.int16()
	s.JumpScene = r.int16()
	s.EntryCondition = r.int16()
	s.OuterEntryX1 = r.int16()
	s.OuterEntryY1 = r.int16()
	s.OuterEntryX2 = r.int16()
	s.OuterEntryY2 = r.int16()
	s.EntryX = r.int16()
	s.EntryY = r.int16()
	r.int16s(s.ExitX[:])
	r.int16s(s.ExitY[:])
	s.JumpX1 = r.int16()
	s.JumpY1 = r.int16()
	s.JumpX2 = r.int16()
	s.JumpY2 = r.int16()

	return s, nil
}

// Scenes decodes a table of consecutive scene records
func (d *Decoder) Scenes(b []byte) ([]*Scene, error) {
	return table(b, SceneSize, d.Scene)
}

// DecodeScene decodes a scene record with UTF-8 text
func DecodeScene(b []byte) (*Scene, error) {
	return defaultDecoder.Scene(b)
}
