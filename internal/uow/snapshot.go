package uow

import "reflect"

var trackedCollectionType = reflect.TypeOf((*TrackedCollection)(nil))

// snapshot captures the exported fields of the struct behind entity. Fields
// tagged `uow:"-"` and tracked collections are not part of the state.
// Slices and maps are shallow-copied so in-place edits are detected.
func snapshot(entity any) map[string]any {
	rv := reflect.ValueOf(entity)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return nil
	}
	rv = rv.Elem()
	rt := rv.Type()

	state := make(map[string]any, rt.NumField())
	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		if !field.IsExported() || field.Tag.Get("uow") == "-" || field.Type == trackedCollectionType {
			continue
		}
		state[field.Name] = cloneValue(rv.Field(i))
	}
	return state
}

func cloneValue(v reflect.Value) any {
	switch v.Kind() {
	case reflect.Slice:
		if v.IsNil() {
			return v.Interface()
		}
		c := reflect.MakeSlice(v.Type(), v.Len(), v.Len())
		reflect.Copy(c, v)
		return c.Interface()
	case reflect.Map:
		if v.IsNil() {
			return v.Interface()
		}
		c := reflect.MakeMapWithSize(v.Type(), v.Len())
		iter := v.MapRange()
		for iter.Next() {
			c.SetMapIndex(iter.Key(), iter.Value())
		}
		return c.Interface()
	default:
		return v.Interface()
	}
}

// diff lists the properties whose values differ between before and after,
// in field declaration order of entity.
func diff(entity any, before, after map[string]any) []string {
	var changed []string
	for _, name := range fieldOrder(entity) {
		a, inAfter := after[name]
		if !inAfter {
			continue
		}
		if b, inBefore := before[name]; !inBefore || !reflect.DeepEqual(a, b) {
			changed = append(changed, name)
		}
	}
	return changed
}

// nonZero lists the properties of a pending insertion that carry a value.
func nonZero(entity any, state map[string]any) []string {
	var set []string
	for _, name := range fieldOrder(entity) {
		v, ok := state[name]
		if !ok || v == nil {
			continue
		}
		if !reflect.ValueOf(v).IsZero() {
			set = append(set, name)
		}
	}
	return set
}

func fieldOrder(entity any) []string {
	rt := reflect.TypeOf(entity)
	if rt == nil || rt.Kind() != reflect.Pointer || rt.Elem().Kind() != reflect.Struct {
		return nil
	}
	rt = rt.Elem()

	names := make([]string, 0, rt.NumField())
	for i := 0; i < rt.NumField(); i++ {
		names = append(names, rt.Field(i).Name)
	}
	return names
}
