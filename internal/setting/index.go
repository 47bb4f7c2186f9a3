package setting

import "github.com/iancoleman/orderedmap"

// Index maps identity keys to settings in first-seen order.
type Index struct {
	m *orderedmap.OrderedMap
}

// NewIndex indexes every setting with a valid key.
// A later setting with the same key replaces the earlier one.
func NewIndex(settings []*Setting) *Index {
	idx := &Index{m: orderedmap.New()}
	for _, s := range settings {
		if s == nil {
			continue
		}
		k := s.Key()
		if !k.Valid() {
			continue
		}
		idx.m.Set(k.String(), s)
	}
	return idx
}

// Lookup returns the setting for k.
func (idx *Index) Lookup(k Key) (*Setting, bool) {
	if !k.Valid() {
		return nil, false
	}
	v, ok := idx.m.Get(k.String())
	if !ok {
		return nil, false
	}
	s, ok := v.(*Setting)
	return s, ok
}

// Keys returns the indexed keys in first-seen order.
func (idx *Index) Keys() []Key {
	keys := make([]Key, 0, len(idx.m.Keys()))
	for _, name := range idx.m.Keys() {
		v, _ := idx.m.Get(name)
		if s, ok := v.(*Setting); ok {
			keys = append(keys, s.Key())
		}
	}
	return keys
}

// Len returns the number of indexed settings.
func (idx *Index) Len() int {
	return len(idx.m.Keys())
}
