package dynamo

import "github.com/TheBitDrifter/table"

type factory struct{}

var Factory factory

func (f factory) NewRegistry(schema table.Schema) ComponentRegistry {
	return newComponentRegistry(schema)
}

func (f factory) NewFamilies(registry ComponentRegistry) Families {
	return newFamilyRegistry(registry)
}

func (f factory) NewEngine() Engine {
	return newEngine()
}

func (f factory) NewEntity(registry ComponentRegistry) *BasicEntity {
	return newBasicEntity(registry)
}

func FactoryNewComponent[T any]() Component {
	return table.FactoryNewElementType[T]()
}
