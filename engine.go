package dynamo

import (
	"context"
	"reflect"
	"time"

	"github.com/kamstrup/intmap"
	"go.uber.org/zap"
)

var _ Engine = &engine{}

type engine struct {
	entities    []Entity
	entityIndex *intmap.Map[int, Entity]

	systems       []System
	systemIndices map[reflect.Type]int

	// Families that have been queried at least once, keyed by family index,
	// alongside the cached member set for each. Both maps grow on first query
	// and are maintained incrementally afterwards.
	families map[uint32]Family
	members  map[uint32][]Entity
}

func newEngine() *engine {
	return &engine{
		entityIndex:   intmap.New[int, Entity](256),
		systemIndices: make(map[reflect.Type]int),
		families:      make(map[uint32]Family),
		members:       make(map[uint32][]Entity),
	}
}

// AddEntity registers e with the engine and invokes its added hook. Adding an
// entity that is already registered leaves the entity set unchanged but still
// invokes the hook. Known family caches pick up the entity immediately.
func (en *engine) AddEntity(e Entity) {
	if _, present := en.entityIndex.Get(e.ID()); !present {
		en.entities = append(en.entities, e)
		en.entityIndex.Put(e.ID(), e)
		en.refreshMembership(e)
		Config.logger.Debug("entity added", zap.Int("entity", e.ID()))
	}
	e.AddedToEngine(en)
}

// RemoveEntity purges e from every family cache, clears its family bits,
// deletes it from the entity set, and invokes its removed hook.
func (en *engine) RemoveEntity(e Entity) {
	for index := range en.families {
		if !e.HasFamilyBit(index) {
			continue
		}
		en.members[index] = deleteMember(en.members[index], e)
		e.ClearFamilyBit(index)
	}
	if _, present := en.entityIndex.Get(e.ID()); present {
		for i, candidate := range en.entities {
			if candidate.ID() == e.ID() {
				en.entities = append(en.entities[:i], en.entities[i+1:]...)
				break
			}
		}
		en.entityIndex.Del(e.ID())
		Config.logger.Debug("entity removed", zap.Int("entity", e.ID()))
	}
	e.RemovedFromEngine(en)
}

// Entity returns the registered entity with the given ID, if any.
func (en *engine) Entity(id int) (Entity, bool) {
	return en.entityIndex.Get(id)
}

// Entities returns the live entity set in registration order. The returned
// slice is only valid until the next mutating call; callers must not modify it.
func (en *engine) Entities() []Entity {
	return en.entities
}

// AddSystem registers s under its concrete type and invokes its added hook.
// A system of the same type that is already registered is silently replaced
// in its original update slot; the replaced instance receives no removed
// hook. Callers that need the hook must remove the old system explicitly.
func (en *engine) AddSystem(s System) {
	systemType := reflect.TypeOf(s)
	if i, present := en.systemIndices[systemType]; present {
		en.systems[i] = s
		Config.logger.Debug("system replaced", zap.String("system", systemType.String()))
	} else {
		en.systemIndices[systemType] = len(en.systems)
		en.systems = append(en.systems, s)
		Config.logger.Debug("system added", zap.String("system", systemType.String()))
	}
	s.AddedToEngine(en)
}

// RemoveSystem deregisters and returns the system of the given type, invoking
// its removed hook. When no such system is registered nothing happens and the
// second return is false.
func (en *engine) RemoveSystem(systemType reflect.Type) (System, bool) {
	i, present := en.systemIndices[systemType]
	if !present {
		return nil, false
	}
	removed := en.systems[i]
	en.systems = append(en.systems[:i], en.systems[i+1:]...)
	delete(en.systemIndices, systemType)
	for t, j := range en.systemIndices {
		if j > i {
			en.systemIndices[t] = j - 1
		}
	}
	Config.logger.Debug("system removed", zap.String("system", systemType.String()))
	removed.RemovedFromEngine(en)
	return removed, true
}

// SystemFor looks up the registered system of the given type. Pure lookup,
// no side effects.
func (en *engine) SystemFor(systemType reflect.Type) (System, bool) {
	i, present := en.systemIndices[systemType]
	if !present {
		return nil, false
	}
	return en.systems[i], true
}

// EntitiesFor returns the entities currently matching f. The first query for
// a family scans the full entity set once; afterwards the cached set is
// maintained incrementally from component change announcements. The returned
// slice is the live cache and is only valid until the next mutating call;
// callers must not modify it.
func (en *engine) EntitiesFor(f Family) []Entity {
	index := f.Index()
	if matched, cached := en.members[index]; cached {
		return matched
	}

	matched := make([]Entity, 0)
	for _, e := range en.entities {
		if f.Matches(e) {
			matched = append(matched, e)
			e.MarkFamilyBit(index)
		}
	}
	en.families[index] = f
	en.members[index] = matched
	Config.logger.Debug("family cache built",
		zap.Uint32("family", index),
		zap.Int("matched", len(matched)),
	)
	return matched
}

// ComponentAdded announces that a component was attached to e. Membership in
// every known family is reconciled in O(known families); families whose
// verdict for e is unchanged are left untouched.
func (en *engine) ComponentAdded(e Entity, c Component) {
	if _, present := en.entityIndex.Get(e.ID()); !present {
		return
	}
	en.refreshMembership(e)
}

// ComponentRemoved announces that a component was detached from e.
func (en *engine) ComponentRemoved(e Entity, c Component) {
	if _, present := en.entityIndex.Get(e.ID()); !present {
		return
	}
	en.refreshMembership(e)
}

// refreshMembership reconciles e against every family known to the cache,
// using the entity's family bit to decide in O(1) whether it was already
// counted. The bit and the cached set always change together.
func (en *engine) refreshMembership(e Entity) {
	for index, f := range en.families {
		matches := f.Matches(e)
		counted := e.HasFamilyBit(index)
		switch {
		case matches && !counted:
			en.members[index] = append(en.members[index], e)
			e.MarkFamilyBit(index)
		case !matches && counted:
			en.members[index] = deleteMember(en.members[index], e)
			e.ClearFamilyBit(index)
		}
	}
}

// Update invokes every registered system's update once with dt, in insertion
// order. The order is stable for a run but systems must not rely on it for
// correctness.
func (en *engine) Update(dt float64) {
	for _, s := range en.systems {
		s.Update(dt)
	}
}

// Run drives Update at the given interval with wall-clock delta times until
// the context is cancelled. Convenience driver only; embedders with their own
// frame loop call Update directly.
func (en *engine) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastTime := time.Now()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			dt := now.Sub(lastTime).Seconds()
			lastTime = now
			en.Update(dt)
		}
	}
}

func deleteMember(members []Entity, e Entity) []Entity {
	for i, candidate := range members {
		if candidate.ID() == e.ID() {
			return append(members[:i], members[i+1:]...)
		}
	}
	return members
}
