package model

// Vertex is a property-graph vertex record.
type Vertex struct {
	ID         string
	Label      string
	Properties map[string]any
}

// Property returns the named property value.
func (v *Vertex) Property(key string) (any, bool) {
	val, ok := v.Properties[key]

	return val, ok
}

// Edge is a labelled connection between two vertices.
type Edge struct {
	Source string
	Target string
	Label  string
}
