package dynamo

import (
	"github.com/TheBitDrifter/table"
)

var _ ComponentRegistry = &componentRegistry{}

// componentRegistry allocates component bits through a table schema: the
// schema's row index for a registered element type is the component's bit.
type componentRegistry struct {
	schema table.Schema
}

func newComponentRegistry(schema table.Schema) *componentRegistry {
	return &componentRegistry{schema: schema}
}

// BitFor returns the bit for c, allocating one on first sight. Repeated calls
// with the same component type return the same bit.
func (r *componentRegistry) BitFor(c Component) uint32 {
	r.schema.Register(c)
	return r.schema.RowIndexFor(c)
}
