// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package metadata

import (
	"fmt"
	"reflect"
	"sync"
	"unicode"
)

// Registry is the per-class descriptor table.
//
// It is safe for concurrent use; registration is expected at startup and
// every later call is a read.
type Registry struct {
	mu          sync.RWMutex
	descriptors map[string]TypeDescriptor
}

// NewRegistry builds a Registry pre-populated with descriptors. It panics on
// an invalid or duplicate descriptor, as a startup table cannot be partially
// valid.
func NewRegistry(descriptors ...TypeDescriptor) *Registry {
	r := &Registry{descriptors: make(map[string]TypeDescriptor, len(descriptors))}
	for _, d := range descriptors {
		if err := r.Register(d); err != nil {
			panic(err)
		}
	}
	return r
}

// Register adds the descriptor of one class.
func (r *Registry) Register(d TypeDescriptor) error {
	if d.Class == "" {
		return ErrEmptyClass
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, found := r.descriptors[d.Class]; found {
		return fmt.Errorf("%w: %s", ErrDuplicateDescriptor, d.Class)
	}

	relations := make([]Relation, len(d.Relations))
	copy(relations, d.Relations)
	d.Relations = relations

	r.descriptors[d.Class] = d
	return nil
}

// Describe returns the descriptor of class.
func (r *Registry) Describe(class string) (TypeDescriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, found := r.descriptors[class]
	return d, found
}

// IsSyncEnabled reports whether class is declared as a sync participant.
// Unknown classes are not.
func (r *Registry) IsSyncEnabled(class string) bool {
	d, found := r.Describe(class)
	return found && d.SyncEnabled
}

// ParentRelationsOf returns the declared relations of class in declaration
// order, including the ones marked IgnoreCascade so callers can tell them
// apart.
func (r *Registry) ParentRelationsOf(class string) []Relation {
	d, found := r.Describe(class)
	if !found {
		return nil
	}
	return d.Relations
}

// Accessor resolves name against class.
//
// A descriptor accessor wins. Otherwise entity is inspected for an exported
// zero-argument method returning one value, named either name itself or name
// with its first letter upper-cased, so the default "getId" finds GetId.
func (r *Registry) Accessor(class string, entity any, name string) (Accessor, error) {
	if d, found := r.Describe(class); found {
		if accessor, ok := d.Accessors[name]; ok {
			return accessor, nil
		}
	}

	if _, ok := lookupMethod(entity, name); ok {
		return func(e any) (any, error) {
			method, ok := lookupMethod(e, name)
			if !ok {
				return nil, fmt.Errorf("%w: %T.%s", ErrAccessorNotFound, e, name)
			}
			return method.Call(nil)[0].Interface(), nil
		}, nil
	}

	return nil, fmt.Errorf("%w: %s.%s", ErrAccessorNotFound, class, name)
}

func lookupMethod(entity any, name string) (reflect.Value, bool) {
	if entity == nil || name == "" {
		return reflect.Value{}, false
	}

	rv := reflect.ValueOf(entity)
	for _, candidate := range []string{name, exportedName(name)} {
		m := rv.MethodByName(candidate)
		if !m.IsValid() {
			continue
		}
		if t := m.Type(); t.NumIn() == 0 && t.NumOut() == 1 {
			return m, true
		}
	}

	return reflect.Value{}, false
}

func exportedName(name string) string {
	runes := []rune(name)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
