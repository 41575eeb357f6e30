package grid

// Layer identifies one of the layers of the scene map
type Layer int

const (
	// LayerEarth holds the ground sprite of each cell, doubled
	LayerEarth Layer = iota
	// LayerBuilding holds the building sprite, doubled. A non-zero value
	// blocks movement
	LayerBuilding
	// LayerAir holds sprites drawn above everything else, doubled
	LayerAir
	// LayerEvent holds the event number at each cell
	LayerEvent
	// LayerBuildingHeight is the vertical offset of buildings and events
	LayerBuildingHeight
	// LayerAirHeight is the vertical offset of the air layer
	LayerAirHeight
)

var layerNames = [LayerNum]string{
	"earth",
	"building",
	"air",
	"event",
	"building-height",
	"air-height",
}

func (l Layer) String() string {
	if l < 0 || int(l) >= len(layerNames) {
		return "unknown"
	}
	return layerNames[l]
}

// ParseLayer returns the Layer with the given name
func ParseLayer(name string) (Layer, bool) {
	for i, n := range layerNames {
		if n == name {
			return Layer(i), true
		}
	}
	return 0, false
}

// Field identifies one of the fields of an event
type Field int

const (
	FieldBlocking Field = iota
	FieldID
	FieldInteractScript
	FieldItemScript
	FieldStepScript
	FieldPictureStart
	FieldPictureEnd
	FieldPicture
	FieldPictureDelay
	FieldX
	FieldY
)

// Unchanged marks a field that Update should leave as is
const Unchanged = -2
