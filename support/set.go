package support

import (
	"sort"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
)

// StringSet is an insertion-order-independent, iteration-order-deterministic
// set of strings, backed by a gods treeset so Keys() is always sorted. This
// gives every caller (closure construction, FIRST/FOLLOW fixed points,
// canonical state collection) a hash-stable string to intern on.
// (lrtables computes nullable and FIRST only; there is no FOLLOW set.)
type StringSet struct {
	t *treeset.Set
}

// NewStringSet returns an empty StringSet, optionally seeded with elements.
func NewStringSet(elements ...string) *StringSet {
	s := &StringSet{t: treeset.NewWith(utils.StringComparator)}
	s.AddAll(elements...)
	return s
}

func (s *StringSet) Add(v string) bool {
	if s.Has(v) {
		return false
	}
	s.t.Add(v)
	return true
}

func (s *StringSet) AddAll(vs ...string) {
	for _, v := range vs {
		s.Add(v)
	}
}

// Union adds every element of o into s, returning whether s changed.
func (s *StringSet) Union(o *StringSet) bool {
	changed := false
	for _, v := range o.Keys() {
		if s.Add(v) {
			changed = true
		}
	}
	return changed
}

func (s *StringSet) Has(v string) bool {
	return s.t.Contains(v)
}

func (s *StringSet) Len() int {
	return s.t.Size()
}

// Keys returns the set's elements, sorted.
func (s *StringSet) Keys() []string {
	vals := s.t.Values()
	out := make([]string, len(vals))
	for i := range vals {
		out[i] = vals[i].(string)
	}
	sort.Strings(out)
	return out
}

func (s *StringSet) Copy() *StringSet {
	return NewStringSet(s.Keys()...)
}

// VSet maps a canonical string key to an arbitrary value, with deterministic
// (sorted-key) iteration via Keys(). It is the workhorse for ParseItem sets
// (key = the item's Key(): rule id, dot position and lookahead).
type VSet[V any] struct {
	keys *treeset.Set
	vals map[string]V
}

func NewVSet[V any]() *VSet[V] {
	return &VSet[V]{
		keys: treeset.NewWith(utils.StringComparator),
		vals: map[string]V{},
	}
}

func (s *VSet[V]) Set(key string, v V) {
	s.keys.Add(key)
	s.vals[key] = v
}

func (s *VSet[V]) Get(key string) (V, bool) {
	v, ok := s.vals[key]
	return v, ok
}

func (s *VSet[V]) Has(key string) bool {
	return s.keys.Contains(key)
}

func (s *VSet[V]) Len() int {
	return s.keys.Size()
}

// Keys returns every key in sorted order, so two VSets with the same
// contents always produce the same iteration order.
func (s *VSet[V]) Keys() []string {
	vals := s.keys.Values()
	out := make([]string, len(vals))
	for i := range vals {
		out[i] = vals[i].(string)
	}
	sort.Strings(out)
	return out
}

// Values returns the set's values in the same deterministic order as Keys.
func (s *VSet[V]) Values() []V {
	keys := s.Keys()
	out := make([]V, len(keys))
	for i, k := range keys {
		out[i] = s.vals[k]
	}
	return out
}
