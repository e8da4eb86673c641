package ecs

import "errors"

// EntityID uniquely identifies an entity in the world. IDs are handed out in
// increasing order and never reused, so ordering by ID is creation order.
type EntityID uint64

// NilEntity is the zero value; no valid entity has this ID.
const NilEntity EntityID = 0

// ComponentType is a small integer key used to store/retrieve components.
type ComponentType uint8

// Component is implemented by every data struct stored in the world.
type Component interface {
	Type() ComponentType
}

// ErrDuplicateFacet is the panic value raised by Insert when an entity
// already carries a single-slot component of the same type.
var ErrDuplicateFacet = errors.New("ecs: duplicate single-slot component")
