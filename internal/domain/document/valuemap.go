package document

import (
	"slices"

	"github.com/bnema/ghostedit/internal/domain/value"
)

// Entry is the live state of one key.
type Entry struct {
	Key        string
	Repeatable bool
	// Values holds one element for plain keys and the ordered list for repeatable keys.
	Values []value.Value
	// Issues lists validation problems of the stored values. Flagged values are
	// kept as written and are not corrected.
	Issues []string
}

// Value returns the effective value of a non-repeatable key.
func (e Entry) Value() value.Value {
	if len(e.Values) == 0 {
		return nil
	}
	return e.Values[len(e.Values)-1]
}

// Raw returns the encoded form of every value.
func (e Entry) Raw() []string {
	out := make([]string, len(e.Values))
	for i, v := range e.Values {
		out[i] = value.Encode(v)
	}
	return out
}

// Flagged reports whether the entry carries validation problems.
func (e Entry) Flagged() bool {
	return len(e.Issues) > 0
}

func (e Entry) clone() *Entry {
	return &Entry{
		Key:        e.Key,
		Repeatable: e.Repeatable,
		Values:     slices.Clone(e.Values),
		Issues:     slices.Clone(e.Issues),
	}
}

// ValueMap maps keys to their values in insertion order.
// The zero value is not usable; call NewValueMap.
type ValueMap struct {
	order   []string
	entries map[string]*Entry
}

// NewValueMap returns an empty map.
func NewValueMap() *ValueMap {
	return &ValueMap{entries: make(map[string]*Entry)}
}

// Get returns a copy of the entry for key.
func (m *ValueMap) Get(key string) (Entry, bool) {
	e, ok := m.entries[key]
	if !ok {
		return Entry{}, false
	}
	return *e.clone(), true
}

// Has reports whether key has a value.
func (m *ValueMap) Has(key string) bool {
	_, ok := m.entries[key]
	return ok
}

// Set replaces the values of key. An empty list deletes the key.
// A key that already exists keeps its position.
func (m *ValueMap) Set(key string, repeatable bool, values []value.Value, issues []string) {
	if len(values) == 0 {
		m.Delete(key)
		return
	}
	e, ok := m.entries[key]
	if !ok {
		e = &Entry{Key: key}
		m.entries[key] = e
		m.order = append(m.order, key)
	}
	e.Repeatable = repeatable
	e.Values = slices.Clone(values)
	e.Issues = slices.Clone(issues)
}

// Append adds one element to a repeatable key, creating it if needed.
func (m *ValueMap) Append(key string, v value.Value, issues []string) {
	e, ok := m.entries[key]
	if !ok {
		e = &Entry{Key: key, Repeatable: true}
		m.entries[key] = e
		m.order = append(m.order, key)
	}
	e.Values = append(e.Values, v)
	e.Issues = append(e.Issues, issues...)
}

// Delete removes key and reports whether it was present.
func (m *ValueMap) Delete(key string) bool {
	if _, ok := m.entries[key]; !ok {
		return false
	}
	delete(m.entries, key)
	m.order = slices.DeleteFunc(m.order, func(k string) bool { return k == key })
	return true
}

// Keys returns the keys in insertion order.
func (m *ValueMap) Keys() []string {
	return slices.Clone(m.order)
}

// Len returns the number of keys.
func (m *ValueMap) Len() int {
	return len(m.order)
}

// Entries returns copies of all entries in insertion order.
func (m *ValueMap) Entries() []Entry {
	out := make([]Entry, 0, len(m.order))
	for _, k := range m.order {
		out = append(out, *m.entries[k].clone())
	}
	return out
}

// Flagged returns the keys whose values failed validation.
func (m *ValueMap) Flagged() []string {
	var out []string
	for _, k := range m.order {
		if m.entries[k].Flagged() {
			out = append(out, k)
		}
	}
	return out
}

// Clone returns an independent copy, used for the load-time snapshot.
func (m *ValueMap) Clone() *ValueMap {
	c := &ValueMap{
		order:   slices.Clone(m.order),
		entries: make(map[string]*Entry, len(m.entries)),
	}
	for k, e := range m.entries {
		c.entries[k] = e.clone()
	}
	return c
}
