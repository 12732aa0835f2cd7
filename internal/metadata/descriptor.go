package metadata

import (
	"fmt"
	"reflect"
)

// Accessor reads a value from an object. Errors abort the surrounding flush.
type Accessor func(entity any) (any, error)

// Relation describes one declared property of a class for the cascade walk.
//
// A relation with IgnoreCascade set is skipped entirely. A relation with a
// Parent accessor leads to the object that must be stamped as changed when
// the owner changes. A relation may be neither; it is then not inspected.
type Relation struct {
	Property      string
	IgnoreCascade bool
	Parent        Accessor
}

// IsParent reports whether the relation is followed by the cascade.
func (r Relation) IsParent() bool {
	return !r.IgnoreCascade && r.Parent != nil
}

// TypeDescriptor is the precomputed capability set of one class.
type TypeDescriptor struct {
	// Class is the real runtime class name, as reported by the host.
	Class string

	// SyncEnabled marks the class as a synchronization participant.
	SyncEnabled bool

	// Relations lists the declared properties relevant to the cascade, in
	// declaration order.
	Relations []Relation

	// Accessors maps accessor names (e.g. "getId") to functions.
	Accessors map[string]Accessor
}

// ParentOf declares property as a parent relation of T read through get.
// A nil parent pointer means "no parent".
func ParentOf[T any, P any](property string, get func(T) *P) Relation {
	return Relation{
		Property: property,
		Parent: func(entity any) (any, error) {
			e, ok := entity.(T)
			if !ok {
				return nil, fmt.Errorf("%w: %s wants %T, got %T", ErrAccessorTypeMismatch, property, *new(T), entity)
			}

			parent := get(e)
			if parent == nil {
				return nil, nil
			}
			return parent, nil
		},
	}
}

// Ignored declares property as excluded from the cascade walk.
func Ignored(property string) Relation {
	return Relation{Property: property, IgnoreCascade: true}
}

// AccessorOf adapts a typed getter to an [Accessor].
func AccessorOf[T any, V any](get func(T) V) Accessor {
	return func(entity any) (any, error) {
		e, ok := entity.(T)
		if !ok {
			return nil, fmt.Errorf("%w: wants %T, got %T", ErrAccessorTypeMismatch, *new(T), entity)
		}
		return get(e), nil
	}
}

// IsEntity reports whether v is a structured domain instance: a non-nil
// pointer to a struct. Scalars, nil and non-pointer values are not.
func IsEntity(v any) bool {
	if v == nil {
		return false
	}

	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && !rv.IsNil() && rv.Elem().Kind() == reflect.Struct
}
