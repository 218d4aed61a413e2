package types

import (
	"iter"
	"slices"

	"github.com/ghettovoice/siphdr/internal/util"
)

// Param is a single key/value parameter.
type Param struct {
	Key   string
	Value string
}

// Params is an ordered set of parameters with unique keys.
// Keys are matched case-insensitively; the spelling of the first insertion is kept.
// Iteration and rendering follow insertion order.
// The zero value is an empty set ready to use.
//
// A literal may hold the same key more than once. [Params.All] and [Params.Clone]
// fold such duplicates the way repeated [Params.Set] calls would:
// first position and spelling, last value.
type Params []Param

// ParamsFromMap builds a set from an unordered map.
// Keys are inserted in ascending byte order so the result is deterministic.
// Map keys differing only in letter case name the same parameter:
// the first of them in that order is kept together with its own value, the others are dropped.
func ParamsFromMap(m map[string]string) Params {
	if len(m) == 0 {
		return nil
	}
	ps := make(Params, 0, len(m))
	for _, k := range util.SortedKeys(m) {
		if ps.Has(k) {
			continue
		}
		ps = append(ps, Param{k, m[k]})
	}
	return ps
}

func (ps Params) index(key string) int {
	for i := range ps {
		if util.EqFold(ps[i].Key, key) {
			return i
		}
	}
	return -1
}

func (ps Params) lastIndex(key string) int {
	for i := len(ps) - 1; i >= 0; i-- {
		if util.EqFold(ps[i].Key, key) {
			return i
		}
	}
	return -1
}

// Get returns the value of key.
func (ps Params) Get(key string) (string, bool) {
	if i := ps.lastIndex(key); i >= 0 {
		return ps[i].Value, true
	}
	return "", false
}

// Has checks whether key is in the set.
func (ps Params) Has(key string) bool { return ps.index(key) >= 0 }

// Set sets key to value. An existing key keeps its position.
func (ps Params) Set(key, value string) Params {
	var found bool
	for i := range ps {
		if util.EqFold(ps[i].Key, key) {
			ps[i].Value = value
			found = true
		}
	}
	if found {
		return ps
	}
	return append(ps, Param{key, value})
}

// Del returns the set without key. The receiver is left unchanged.
func (ps Params) Del(key string) Params {
	return slices.DeleteFunc(slices.Clone(ps), func(p Param) bool {
		return util.EqFold(p.Key, key)
	})
}

// All returns an iterator over unique keys in insertion order.
func (ps Params) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for i := range ps {
			if ps.index(ps[i].Key) != i {
				continue
			}
			if !yield(ps[i].Key, ps[ps.lastIndex(ps[i].Key)].Value) {
				return
			}
		}
	}
}

// Len returns the number of unique keys.
func (ps Params) Len() int {
	var n int
	for range ps.All() {
		n++
	}
	return n
}

// Clone returns a copy of the set with duplicate keys folded.
func (ps Params) Clone() Params {
	if ps == nil {
		return nil
	}
	c := make(Params, 0, len(ps))
	for k, v := range ps.All() {
		c = append(c, Param{k, v})
	}
	return c
}
