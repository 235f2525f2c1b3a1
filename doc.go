/*
Package dynamo provides the engine core of an Entity-Component-System (ECS) framework.

Dynamo keeps track of live entities, the systems that process them, and, above
all, which entities currently match which component families. Each family
is scanned once on its first query and kept current from component change
notifications afterwards, so steady-state component churn never rescans the
entity set.

Core Concepts:

  - Entity: An identity that components are attached to.
  - Component: A typed marker attached to entities; each distinct component type owns a stable bit.
  - Family: A predicate over an entity's component bits (all/any/none combinations).
  - System: Per-frame logic driven by the engine's update loop.
  - Engine: The owner of entities, systems, and the per-family membership cache.

Basic Usage:

	// Create a component registry and an engine
	schema := table.Factory.NewSchema()
	registry := dynamo.Factory.NewRegistry(schema)
	engine := dynamo.Factory.NewEngine()

	// Define components
	position := dynamo.FactoryNewComponent[Position]()
	velocity := dynamo.FactoryNewComponent[Velocity]()

	// Create an entity and attach it
	player := dynamo.Factory.NewEntity(registry)
	player.AddComponent(position)
	player.AddComponent(velocity)
	engine.AddEntity(player)

	// Build a family and query it each frame
	families := dynamo.Factory.NewFamilies(registry)
	moving, _ := families.All(position, velocity)

	for _, e := range engine.EntitiesFor(moving) {
		// process e
	}

	// Drive registered systems once per frame
	engine.Update(deltaTime)

Dynamo is a bookkeeping layer only: it is single threaded, holds no component
data of its own, and expects every public operation to run to completion on
the loop that drives it. Applications that manage component bits themselves
must announce every change through ComponentAdded/ComponentRemoved; the
engine does not observe entity mutations on its own.

Dynamo pairs with the warehouse storage layer in the Bappa Framework but
works as a standalone library.
*/
package dynamo
