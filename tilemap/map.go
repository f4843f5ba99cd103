package tilemap

// Map is an ordered stack of layer references composited bottom-to-top.
// Layers are referenced by project ID and resolved at use time, so a removed
// layer simply stops contributing to the composite.
type Map struct {
	Name   string
	width  int
	height int
	layers []string
}

// NewMap creates an empty map sized in tiles. Dimensions below 1 are
// clamped to 1.
func NewMap(name string, w, h int) *Map {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return &Map{Name: name, width: w, height: h}
}

// Width returns the map width in tiles.
func (m *Map) Width() int { return m.width }

// Height returns the map height in tiles.
func (m *Map) Height() int { return m.height }

// Layers returns the layer ID stack, bottom first.
func (m *Map) Layers() []string {
	out := make([]string, len(m.layers))
	copy(out, m.layers)
	return out
}

// PushLayer appends a layer ID to the top of the stack.
func (m *Map) PushLayer(id string) {
	if id == "" {
		return
	}
	m.layers = append(m.layers, id)
}

// RemoveLayer drops the first occurrence of the layer ID from the stack.
func (m *Map) RemoveLayer(id string) bool {
	for i, l := range m.layers {
		if l == id {
			m.layers = append(m.layers[:i], m.layers[i+1:]...)
			return true
		}
	}
	return false
}

// MoveLayer reorders the layer at index from to index to. Indices outside
// the stack are ignored.
func (m *Map) MoveLayer(from, to int) {
	if from < 0 || from >= len(m.layers) || to < 0 || to >= len(m.layers) || from == to {
		return
	}
	id := m.layers[from]
	m.layers = append(m.layers[:from], m.layers[from+1:]...)
	rest := append([]string{}, m.layers[to:]...)
	m.layers = append(append(m.layers[:to:to], id), rest...)
}

// Clone returns a deep copy of the map.
func (m *Map) Clone() *Map {
	return &Map{Name: m.Name, width: m.width, height: m.height, layers: m.Layers()}
}
