package record

const (
	// ThingSize is the size in bytes of a thing record
	ThingSize = 260

	thingNameSize        = 40
	thingDescriptionSize = 60
	thingUnknown         = 3
	craftSlots           = 5
)

// Thing is an item; equipment, consumables, manuals and materials
type Thing struct {
	ID          int16
	Name        string
	AltName     string
	Description string

	Skill           int16
	ThrowAnimation  int16
	User            int16
	EquipType       int16
	ShowDescription int16
	Kind            int16
	Unknown         [thingUnknown]int16

	AddLife         int16
	AddMaxLife      int16
	AddPoisonCure   int16
	AddStamina      int16
	ChangeInnerType int16
	AddInner        int16
	AddMaxInner     int16
	AddAttack       int16
	AddAgility      int16
	AddDefence      int16
	AddHealing      int16
	AddPoisonSkill  int16
	AddAntidote     int16
	AddPoisonResist int16
	AddFist         int16
	AddSword        int16
	AddBlade        int16
	AddSpecial      int16
	AddThrowing     int16
	AddKnowledge    int16
	AddMorality     int16
	AddAttackCount  int16
	AddPoisonAttack int16

	OnlyFor int16

	NeedInnerType   int16
	NeedInner       int16
	NeedAttack      int16
	NeedAgility     int16
	NeedPoisonSkill int16
	NeedHealing     int16
	NeedAntidote    int16
	NeedFist        int16
	NeedSword       int16
	NeedBlade       int16
	NeedSpecial     int16
	NeedThrowing    int16
	NeedTalent      int16
	NeedExp         int16

	CraftExp      int16
	CraftMaterial int16
	CraftItems    [craftSlots]int16
	CraftCounts   [craftSlots]int16
}

// Thing decodes a thing record
func (d *Decoder) Thing(b []byte) (*Thing, error) {
	r, err := d.reader(b, ThingSize)
	if err != nil {
		return nil, err
	}

	t := new(Thing)
	t.ID = r.int16()
	t.Name = r.text(thingNameSize)
	t.AltName = r.text(thingNameSize)
	t.Description = r.text(thingDescriptionSize)
	t.Skill = r.int16()
	t.ThrowAnimation = r.int16()
	t.User = r.int16()
	t.EquipType = r.int16()
	t.ShowDescription = r.int16()
	t.Kind = r.int16()
	r.int16s(t.Unknown[:])

	for _, v := range []*int16{
		&t.AddLife, &t.AddMaxLife, &t.AddPoisonCure, &t.AddStamina,
		&t.ChangeInnerType, &t.AddInner, &t.AddMaxInner, &t.AddAttack,
		&t.AddAgility, &t.AddDefence, &t.AddHealing, &t.AddPoisonSkill,
		&t.AddAntidote, &t.AddPoisonResist, &t.AddFist, &t.AddSword,
		&t.AddBlade, &t.AddSpecial, &t.AddThrowing, &t.AddKnowledge,
		&t.AddMorality, &t.AddAttackCount, &t.AddPoisonAttack,
		&t.OnlyFor,
		&t.NeedInnerType, &t.NeedInner, &t.NeedAttack, &t.NeedAgility,
		&t.NeedPoisonSkill, &t.NeedHealing, &t.NeedAntidote, &t.NeedFist,
		&t.NeedSword, &t.NeedBlade, &t.NeedSpecial, &t.NeedThrowing,
		&t.NeedTalent, &t.NeedExp,
		&t.CraftExp, &t.CraftMaterial,
	} {
		*v = r.int16()
	}

	r.int16s(t.CraftItems[:])
	r.int16s(t.CraftCounts[:])

	return t, nil
}

// Things decodes a table of consecutive thing records
func (d *Decoder) Things(b []byte) ([]*Thing, error) {
	return table(b, ThingSize, d.Thing)
}

// DecodeThing decodes a thing record with UTF-8 text
func DecodeThing(b []byte) (*Thing, error) {
	return defaultDecoder.Thing(b)
}
