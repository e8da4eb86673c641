package ecs

import (
	"fmt"
	"slices"
)

// World is the central entity registry and component store.
type World struct {
	nextID     EntityID
	alive      map[EntityID]bool
	components map[ComponentType]map[EntityID]Component
}

// NewWorld creates an empty World.
func NewWorld() *World {
	return &World{
		nextID:     1,
		alive:      make(map[EntityID]bool),
		components: make(map[ComponentType]map[EntityID]Component),
	}
}

// CreateEntity mints a new entity ID and marks it alive.
func (w *World) CreateEntity() EntityID {
	id := w.nextID
	w.nextID++
	w.alive[id] = true
	return id
}

// RestoreEntity marks a previously issued ID alive again. Only the load path
// uses it; later CreateEntity calls continue past the highest restored ID.
func (w *World) RestoreEntity(id EntityID) {
	if id == NilEntity {
		return
	}
	w.alive[id] = true
	if id >= w.nextID {
		w.nextID = id + 1
	}
}

// DestroyEntity marks the entity dead and removes all its components.
func (w *World) DestroyEntity(id EntityID) {
	if !w.alive[id] {
		return
	}
	delete(w.alive, id)
	for _, store := range w.components {
		delete(store, id)
	}
}

// Alive reports whether the entity is alive.
func (w *World) Alive(id EntityID) bool {
	return w.alive[id]
}

// Entities returns every alive entity in creation order.
func (w *World) Entities() []EntityID {
	ids := make([]EntityID, 0, len(w.alive))
	for id := range w.alive {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Add attaches a component to an entity, replacing any previous one.
func (w *World) Add(id EntityID, c Component) {
	t := c.Type()
	if w.components[t] == nil {
		w.components[t] = make(map[EntityID]Component)
	}
	w.components[t][id] = c
}

// Insert attaches a single-slot component. Inserting a second component of
// the same type on one entity is a scheduling bug and panics.
func (w *World) Insert(id EntityID, c Component) {
	if w.Has(id, c.Type()) {
		panic(fmt.Errorf("%w: type %d on entity %d", ErrDuplicateFacet, c.Type(), id))
	}
	w.Add(id, c)
}

// Get returns the component of the given type for entity id, or nil.
func (w *World) Get(id EntityID, t ComponentType) Component {
	store := w.components[t]
	if store == nil {
		return nil
	}
	return store[id]
}

// Remove detaches a component from an entity.
func (w *World) Remove(id EntityID, t ComponentType) {
	if store := w.components[t]; store != nil {
		delete(store, id)
	}
}

// Clear drops every component of type t from every entity.
func (w *World) Clear(t ComponentType) {
	delete(w.components, t)
}

// Count returns how many entities carry a component of type t.
func (w *World) Count(t ComponentType) int {
	return len(w.components[t])
}

// Has reports whether entity id has a component of the given type.
func (w *World) Has(id EntityID, t ComponentType) bool {
	return w.Get(id, t) != nil
}

// Query returns all alive entities that have every listed component type,
// in creation order.
func (w *World) Query(types ...ComponentType) []EntityID {
	if len(types) == 0 {
		return nil
	}
	// Use the smallest store as the candidate set.
	smallest := types[0]
	for _, t := range types[1:] {
		if len(w.components[t]) < len(w.components[smallest]) {
			smallest = t
		}
	}
	store := w.components[smallest]
	if store == nil {
		return nil
	}
	var result []EntityID
	for id := range store {
		if !w.alive[id] {
			continue
		}
		match := true
		for _, t := range types {
			if t == smallest {
				continue
			}
			if !w.Has(id, t) {
				match = false
				break
			}
		}
		if match {
			result = append(result, id)
		}
	}
	slices.Sort(result)
	return result
}
