package person

// typed is an insertion-ordered mapping from type key to value. The
// DefaultType key is set at construction and never deleted.
type typed[V any] struct {
	keys   []string
	values map[string]V
}

func newTyped[V any](def V) typed[V] {
	return typed[V]{
		keys:   []string{DefaultType},
		values: map[string]V{DefaultType: def},
	}
}

func (t typed[V]) def() V {
	return t.values[DefaultType]
}

func (t typed[V]) get(key string) (V, bool) {
	v, ok := t.values[key]
	return v, ok
}

func (t *typed[V]) put(key string, v V) {
	if _, exists := t.values[key]; !exists {
		t.keys = append(t.keys, key)
	}
	t.values[key] = v
}

func (t typed[V]) clone() typed[V] {
	out := typed[V]{
		keys:   append([]string(nil), t.keys...),
		values: make(map[string]V, len(t.values)),
	}
	for k, v := range t.values {
		out.values[k] = v
	}
	return out
}

func (t typed[V]) each(fn func(key string, v V)) {
	for _, key := range t.keys {
		fn(key, t.values[key])
	}
}
