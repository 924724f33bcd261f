package ast

// ModelDef is everything the emitter and patcher need to produce one model
// file. It is built once per table and not modified afterwards.
type ModelDef struct {
	ClassName   string
	Namespace   string
	Table       string
	Fillable    []string      // Mass-assignable columns, in column order
	Casts       []CastDef     // Ordered column -> cast pairs
	Relations   []RelationDef // Relation methods, in discovery order
	Doc         []DocProperty // Doc block lines; empty means no doc block
	SoftDeletes bool          // Table has a deleted_at column
	Timestamps  bool          // Table has both created_at and updated_at
}

// CastDef declares a cast for one column (e.g. price => float).
type CastDef struct {
	Column string
	Cast   string
}

// Access is the visibility of a documented model property.
type Access int

const (
	ReadWrite Access = iota
	ReadOnly
)

// Tag returns the doc block tag for the access level.
func (a Access) Tag() string {
	if a == ReadOnly {
		return "@property-read"
	}
	return "@property"
}

// DocProperty is one documented model property.
type DocProperty struct {
	Name   string
	Type   string
	Access Access
}

// CastMap returns the casts keyed by column.
func (m *ModelDef) CastMap() map[string]string {
	out := make(map[string]string, len(m.Casts))
	for _, c := range m.Casts {
		out[c.Column] = c.Cast
	}
	return out
}
