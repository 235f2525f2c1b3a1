package dynamo

import (
	"iter"
	"sync/atomic"

	"github.com/TheBitDrifter/mask"
	iter_util "github.com/TheBitDrifter/util/iter"
)

var _ Entity = &BasicEntity{}

var entityIDs atomic.Int64

// BasicEntity is the stock Entity implementation. It tracks its own component
// bits through a ComponentRegistry and, once registered with an engine,
// forwards every component change to the engine's ComponentAdded and
// ComponentRemoved hooks. Applications that implement Entity themselves must
// make those calls on their own.
type BasicEntity struct {
	id         int
	registry   ComponentRegistry
	engine     Engine
	bits       mask.Mask
	familyBits mask.Mask
	components map[uint32]Component
}

func newBasicEntity(registry ComponentRegistry) *BasicEntity {
	return &BasicEntity{
		id:         int(entityIDs.Add(1)),
		registry:   registry,
		components: make(map[uint32]Component),
	}
}

func (e *BasicEntity) ID() int {
	return e.id
}

func (e *BasicEntity) ComponentBits() mask.Mask {
	return e.bits
}

func (e *BasicEntity) HasFamilyBit(index uint32) bool {
	return hasBit(e.familyBits, index)
}

func (e *BasicEntity) MarkFamilyBit(index uint32) {
	e.familyBits.Mark(index)
}

func (e *BasicEntity) ClearFamilyBit(index uint32) {
	e.familyBits.Unmark(index)
}

func (e *BasicEntity) AddedToEngine(engine Engine) {
	e.engine = engine
}

func (e *BasicEntity) RemovedFromEngine(engine Engine) {
	e.engine = nil
}

// AddComponent marks the component's bit and retains the component. The
// change is announced to the engine when the entity is registered with one.
func (e *BasicEntity) AddComponent(c Component) error {
	bit := e.registry.BitFor(c)
	if hasBit(e.bits, bit) {
		return ComponentExistsError{Component: c}
	}
	e.bits.Mark(bit)
	e.components[bit] = c
	if e.engine != nil {
		e.engine.ComponentAdded(e, c)
	}
	return nil
}

// RemoveComponent clears the component's bit, announcing the change to the
// engine when the entity is registered with one.
func (e *BasicEntity) RemoveComponent(c Component) error {
	bit := e.registry.BitFor(c)
	if !hasBit(e.bits, bit) {
		return ComponentNotFoundError{Component: c}
	}
	e.bits.Unmark(bit)
	delete(e.components, bit)
	if e.engine != nil {
		e.engine.ComponentRemoved(e, c)
	}
	return nil
}

// HasComponent reports whether the component's bit is currently marked.
func (e *BasicEntity) HasComponent(c Component) bool {
	return hasBit(e.bits, e.registry.BitFor(c))
}

// Components returns the currently attached components in no particular order.
func (e *BasicEntity) Components() []Component {
	return iter_util.Collect(e.componentSeq())
}

func (e *BasicEntity) componentSeq() iter.Seq[Component] {
	return func(yield func(Component) bool) {
		for _, c := range e.components {
			if !yield(c) {
				return
			}
		}
	}
}

func hasBit(m mask.Mask, index uint32) bool {
	var probe mask.Mask
	probe.Mark(index)
	return m.ContainsAll(probe)
}
