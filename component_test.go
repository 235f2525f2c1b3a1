package dynamo

import (
	"testing"

	"github.com/TheBitDrifter/table"
)

// Test component types
type Position struct {
	X, Y float64
}

type Velocity struct {
	X, Y float64
}

type Health struct {
	Current, Max int
}

func newTestRegistry() ComponentRegistry {
	return Factory.NewRegistry(table.Factory.NewSchema())
}

func TestRegistryDistinctBits(t *testing.T) {
	posComp := FactoryNewComponent[Position]()
	velComp := FactoryNewComponent[Velocity]()
	healthComp := FactoryNewComponent[Health]()

	registry := newTestRegistry()

	bits := make(map[uint32]Component)
	for _, c := range []Component{posComp, velComp, healthComp} {
		bit := registry.BitFor(c)
		if prev, taken := bits[bit]; taken {
			t.Errorf("Bit %d allocated for both %v and %v", bit, prev, c)
		}
		bits[bit] = c
	}
}

func TestRegistryIdempotence(t *testing.T) {
	posComp := FactoryNewComponent[Position]()
	velComp := FactoryNewComponent[Velocity]()

	registry := newTestRegistry()

	first := registry.BitFor(posComp)
	registry.BitFor(velComp)

	for i := 0; i < 5; i++ {
		if got := registry.BitFor(posComp); got != first {
			t.Fatalf("BitFor() = %d on call %d, want stable %d", got, i+2, first)
		}
	}
}

func TestRegistryOrderIndependence(t *testing.T) {
	posComp := FactoryNewComponent[Position]()
	velComp := FactoryNewComponent[Velocity]()

	forward := newTestRegistry()
	fwdPos := forward.BitFor(posComp)
	fwdVel := forward.BitFor(velComp)

	reverse := newTestRegistry()
	revVel := reverse.BitFor(velComp)
	revPos := reverse.BitFor(posComp)

	if fwdPos == fwdVel {
		t.Errorf("Forward registry assigned one bit (%d) to two types", fwdPos)
	}
	if revPos == revVel {
		t.Errorf("Reverse registry assigned one bit (%d) to two types", revPos)
	}
}
