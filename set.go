package jy

// SpriteSet identifies one of the sprite archives
type SpriteSet int

const (
	SceneSprites SpriteSet = iota
	HeadSprites
	ThingSprites

	numSpriteSets = iota
)

var spriteSetNames = [numSpriteSets]string{
	SceneSprites: "scene",
	HeadSprites:  "head",
	ThingSprites: "thing",
}

func (s SpriteSet) valid() bool {
	return s >= 0 && s < numSpriteSets
}

func (s SpriteSet) String() string {
	if !s.valid() {
		return "unknown"
	}
	return spriteSetNames[s]
}

// ParseSpriteSet returns the SpriteSet with the given name
func ParseSpriteSet(name string) (SpriteSet, bool) {
	for i, n := range spriteSetNames {
		if n == name {
			return SpriteSet(i), true
		}
	}
	return 0, false
}
