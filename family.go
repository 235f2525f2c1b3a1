package dynamo

import (
	"github.com/TheBitDrifter/mask"
)

var (
	_ Family   = &family{}
	_ Families = &familyRegistry{}
)

// family evaluates its predicate purely against component masks: the entity
// must contain every bit in all, at least one bit in any (when non-empty),
// and no bit in none (when non-empty).
type family struct {
	index uint32
	all   mask.Mask
	any   mask.Mask
	none  mask.Mask
}

func (f *family) Index() uint32 {
	return f.index
}

func (f *family) Matches(e Entity) bool {
	var empty mask.Mask
	bits := e.ComponentBits()
	if !bits.ContainsAll(f.all) {
		return false
	}
	if f.any != empty && !bits.ContainsAny(f.any) {
		return false
	}
	if f.none != empty && !bits.ContainsNone(f.none) {
		return false
	}
	return true
}

// familyKey is the structural identity of a predicate. Masks are comparable,
// so identical all/any/none triples collapse to the same key.
type familyKey struct {
	all  mask.Mask
	any  mask.Mask
	none mask.Mask
}

type familyRegistry struct {
	registry    ComponentRegistry
	indices     map[familyKey]int
	items       []*family
	maxCapacity int
}

func newFamilyRegistry(registry ComponentRegistry) *familyRegistry {
	return &familyRegistry{
		registry:    registry,
		indices:     make(map[familyKey]int),
		maxCapacity: Config.familyCapacity,
	}
}

// All returns the family matching entities that own every given component.
func (fr *familyRegistry) All(components ...Component) (Family, error) {
	return fr.Match(components, nil, nil)
}

// Match returns the family for the given all/any/none component sets,
// reusing the existing instance and index when an identical predicate was
// registered before.
func (fr *familyRegistry) Match(all, any, none []Component) (Family, error) {
	key := familyKey{
		all:  fr.maskFor(all),
		any:  fr.maskFor(any),
		none: fr.maskFor(none),
	}
	if idx, found := fr.indices[key]; found {
		return fr.items[idx], nil
	}
	if len(fr.items) >= fr.maxCapacity {
		return nil, FamilyCapacityError{Capacity: fr.maxCapacity}
	}

	created := &family{
		index: uint32(len(fr.items)),
		all:   key.all,
		any:   key.any,
		none:  key.none,
	}
	fr.indices[key] = len(fr.items)
	fr.items = append(fr.items, created)
	return created, nil
}

func (fr *familyRegistry) maskFor(components []Component) mask.Mask {
	var m mask.Mask
	for _, c := range components {
		m.Mark(fr.registry.BitFor(c))
	}
	return m
}
