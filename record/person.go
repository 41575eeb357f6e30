package record

const (
	// PersonSize is the size in bytes of a person record
	PersonSize = 202

	nameSize     = 20
	actionFrames = 5
	skillSlots   = 10
	carriedSlots = 4
)

// Person is a playable or non-playable character
type Person struct {
	ID              int16
	Avatar          int16
	LifeGain        int16
	Unused          int16
	Name            string
	Alias           string
	Gender          int16
	Level           int16
	Exp             uint16
	Life            int16
	MaxLife         int16
	Injury          int16
	Toxicity        int16
	Stamina         int16
	ItemFamiliarity int16
	Weapon          int16
	Armor           int16

	ActionFrames [actionFrames]int16
	ActionDelays [actionFrames]int16
	SoundDelays  [actionFrames]int16

	InnerType    int16
	Inner        int16
	MaxInner     int16
	Attack       int16
	Agility      int16
	Defence      int16
	Healing      int16
	PoisonSkill  int16
	Antidote     int16
	PoisonResist int16
	Fist         int16
	Sword        int16
	Blade        int16
	Special      int16
	Throwing     int16
	Knowledge    int16
	Morality     int16
	PoisonAttack int16
	DualWield    int16
	Reputation   int16
	Talent       int16

	TrainingItem   int16
	TrainingPoints int16

	Skills      [skillSlots]int16
	SkillLevels [skillSlots]int16

	Items      [carriedSlots]int16
	ItemCounts [carriedSlots]int16
}

// Person decodes a person record
func (d *Decoder) Person(b []byte) (*Person, error) {
	r, err := d.reader(b, PersonSize)
	if err != nil {
		return nil, err
	}

	p := new(Person)
	p.ID = r.int16()
	p.Avatar = r.int16()
	p.LifeGain = r.int16()
	p.Unused = r.int16()
	p.Name = r.text(nameSize)
	p.Alias = r.text(nameSize)
	p.Gender = r.int16()
	p.Level = r.int16()
	p.Exp = r.uint16()
	p.Life = r.int16()
	p.MaxLife = r.int16()
	p.Injury = r.int16()
	p.Toxicity = r.int16()
	p.Stamina = r.int16()
	p.ItemFamiliarity = r.int16()
	p.Weapon = r.int16()
	p.Armor = r.int16()
	r.int16s(p.ActionFrames[:])
	r.int16s(p.ActionDelays[:])
	r.int16s(p.SoundDelays[:])
	p.InnerType = r.int16()
	p.Inner = r.int16()
	p.MaxInner = r.int16()
	p.Attack = r.int16()
	p.Agility = r.int16()
	p.Defence = r.int16()
	p.Healing = r.int16()
	p.PoisonSkill = r.int16()
	p.Antidote = r.int16()
	p.PoisonResist = r.int16()
	p.Fist = r.int16()
	p.Sword = r.int16()
	p.Blade = r.int16()
	p.Special = r.int16()
	p.Throwing = r.int16()
	p.Knowledge = r.int16()
	p.Morality = r.int16()
	p.PoisonAttack = r.int16()
	p.DualWield = r.int16()
	p.Reputation = r.int16()
	p.Talent = r.int16()
	p.TrainingItem = r.int16()
	p.TrainingPoints = r.int16()
	r.int16s(p.Skills[:])
	r.int16s(p.SkillLevels[:])
	r.int16s(p.Items[:])
	r.int16s(p.ItemCounts[:])

	return p, nil
}

// People decodes a table of consecutive person records
func (d *Decoder) People(b []byte) ([]*Person, error) {
	return table(b, PersonSize, d.Person)
}

// DecodePerson decodes a person record with UTF-8 text
func DecodePerson(b []byte) (*Person, error) {
	return defaultDecoder.Person(b)
}
