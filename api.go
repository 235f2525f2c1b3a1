package dynamo

import (
	"context"
	"reflect"
	"time"

	"github.com/TheBitDrifter/mask"
	"github.com/TheBitDrifter/table"
)

// Component identifies a component type. Each distinct component type is
// assigned a stable bit by a ComponentRegistry the first time it is seen.
type Component interface {
	table.ElementType
}

// ComponentRegistry maps component types to bit positions. Bits are allocated
// on first sight, never reused, and never reassigned for the lifetime of the
// registry.
type ComponentRegistry interface {
	BitFor(Component) uint32
}

// Entity is the contract the engine requires of anything it tracks. The
// engine reads the component bits, addresses the family bits by family index,
// and invokes the lifecycle hooks on registration and deregistration.
//
// BasicEntity is the stock implementation; applications may supply their own.
type Entity interface {
	ID() int
	ComponentBits() mask.Mask
	HasFamilyBit(index uint32) bool
	MarkFamilyBit(index uint32)
	ClearFamilyBit(index uint32)
	AddedToEngine(Engine)
	RemovedFromEngine(Engine)
}

// System is per-frame logic registered with an engine. At most one system per
// concrete type is active at a time.
type System interface {
	AddedToEngine(Engine)
	RemovedFromEngine(Engine)
	Update(dt float64)
}

// Family is an immutable predicate over an entity's component bits. Index is
// the family's bit position in every entity's family bitset and is unique per
// distinct predicate for the lifetime of the Families registry that built it.
type Family interface {
	Matches(Entity) bool
	Index() uint32
}

// Families builds and deduplicates Family values. Structurally identical
// predicates yield the same instance and index.
type Families interface {
	All(components ...Component) (Family, error)
	Match(all, any, none []Component) (Family, error)
}

// Engine owns the live entity set, the system registry, and the per-family
// membership cache, and drives the per-frame update loop.
//
// Every method must run to completion before the next begins; the engine is
// owned by a single execution context and performs no locking.
type Engine interface {
	AddEntity(Entity)
	RemoveEntity(Entity)
	Entity(id int) (Entity, bool)
	Entities() []Entity

	AddSystem(System)
	RemoveSystem(systemType reflect.Type) (System, bool)
	SystemFor(systemType reflect.Type) (System, bool)

	EntitiesFor(Family) []Entity
	ComponentAdded(Entity, Component)
	ComponentRemoved(Entity, Component)

	Update(dt float64)
	Run(ctx context.Context, interval time.Duration)
}
