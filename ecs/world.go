// Package ecs is a small sparse-set entity/component store with a system
// scheduler. It hosts the arena server's per-client characters; the
// playground wires its single character directly and does not need it.
package ecs

import "sync/atomic"

// ComponentID identifies a component type across all worlds.
type ComponentID uint32

var nextComponentID atomic.Uint32

// ComponentHandle ties a component type to its ID. Declare handles as
// package-level vars, one per component type.
type ComponentHandle[T any] struct {
	id ComponentID
}

func NewComponent[T any]() ComponentHandle[T] {
	return ComponentHandle[T]{id: ComponentID(nextComponentID.Add(1))}
}

func (h ComponentHandle[T]) ID() ComponentID {
	return h.id
}

// World owns entities and their component stores.
type World struct {
	entities entityStore
	stores   map[ComponentID]*sparseSet
}

func NewWorld() *World {
	return &World{stores: make(map[ComponentID]*sparseSet)}
}

func (w *World) CreateEntity() Entity {
	return w.entities.create()
}

// DestroyEntity removes the entity and all of its components. It reports
// whether the handle was alive.
func (w *World) DestroyEntity(e Entity) bool {
	if !w.entities.destroy(e) {
		return false
	}
	for _, s := range w.stores {
		s.remove(e.ID)
	}
	return true
}

func (w *World) IsAlive(e Entity) bool {
	return w.entities.isAlive(e)
}

func (w *World) store(id ComponentID) *sparseSet {
	s, ok := w.stores[id]
	if !ok {
		s = &sparseSet{}
		w.stores[id] = s
	}
	return s
}

// Add attaches a component value to an alive entity, replacing any
// previous value of the same type.
func Add[T any](w *World, e Entity, h ComponentHandle[T], value T) bool {
	if !w.IsAlive(e) {
		return false
	}
	w.store(h.id).set(e.ID, &value)
	return true
}

// Get returns a pointer to the entity's component for in-place mutation.
func Get[T any](w *World, e Entity, h ComponentHandle[T]) (*T, bool) {
	if !w.IsAlive(e) {
		return nil, false
	}
	v := w.store(h.id).get(e.ID)
	if v == nil {
		return nil, false
	}
	return v.(*T), true
}

func Has[T any](w *World, e Entity, h ComponentHandle[T]) bool {
	_, ok := Get(w, e, h)
	return ok
}

func Remove[T any](w *World, e Entity, h ComponentHandle[T]) bool {
	if !w.IsAlive(e) {
		return false
	}
	return w.store(h.id).remove(e.ID)
}

// ForEach visits every alive entity carrying the component, in dense
// storage order. The callback may mutate the component but must not add
// or remove components of the same type.
func ForEach[T any](w *World, h ComponentHandle[T], fn func(Entity, *T)) {
	s := w.store(h.id)
	for i, id := range s.denseIDs {
		e := Entity{ID: id, Gen: w.entities.gen[id-1]}
		fn(e, s.denseValues[i].(*T))
	}
}

// Count returns how many entities carry the component.
func Count[T any](w *World, h ComponentHandle[T]) int {
	return len(w.store(h.id).denseIDs)
}
