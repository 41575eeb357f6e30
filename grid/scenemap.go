package grid

// SceneMap is the read-only table of scene layers
type SceneMap struct {
	t table
}

// NewSceneMap returns a SceneMap reading from b. b is not copied
func NewSceneMap(b []byte) *SceneMap {
	return &SceneMap{t: table(b)}
}

// Get returns the value of layer at column x and row y of scene
func (m *SceneMap) Get(scene, x, y int, layer Layer) (int16, error) {
	if err := m.t.checkScene(scene, sceneLayers); err != nil {
		return 0, err
	}
	if err := checkRange("column", x, SceneWidth); err != nil {
		return 0, err
	}
	if err := checkRange("row", y, SceneHeight); err != nil {
		return 0, err
	}
	if err := checkRange("layer", int(layer), LayerNum); err != nil {
		return 0, err
	}
	return m.t.get((scene*LayerNum+int(layer))*sceneCells + y*SceneWidth + x)
}

// Scenes returns the number of complete scenes in the table
func (m *SceneMap) Scenes() int {
	return len(m.t) / 2 / sceneLayers
}
