package selection

import "sort"

// Set is an unordered set of cell ids.
type Set map[CellID]struct{}

// NewSet builds a set from ids.
func NewSet(ids ...CellID) Set {
	s := make(Set, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

func (s Set) Has(id CellID) bool {
	_, ok := s[id]
	return ok
}

func (s Set) Add(id CellID) {
	s[id] = struct{}{}
}

func (s Set) Len() int {
	return len(s)
}

// Union returns a new set holding the ids of s and o.
func (s Set) Union(o Set) Set {
	out := make(Set, len(s)+len(o))
	for id := range s {
		out[id] = struct{}{}
	}
	for id := range o {
		out[id] = struct{}{}
	}
	return out
}

// Minus returns the ids of s that are not in o.
func (s Set) Minus(o Set) Set {
	out := make(Set)
	for id := range s {
		if !o.Has(id) {
			out[id] = struct{}{}
		}
	}
	return out
}

// Equal reports set equality.
func (s Set) Equal(o Set) bool {
	if len(s) != len(o) {
		return false
	}
	for id := range s {
		if !o.Has(id) {
			return false
		}
	}
	return true
}

// Sorted returns the ids in row-major order. Ids that do not parse sort last,
// lexically.
func (s Set) Sorted() []CellID {
	ids := make([]CellID, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sortIDs(ids)
	return ids
}

type sortKey struct {
	coord Coord
	valid bool
	id    CellID
}

func sortIDs(ids []CellID) {
	keys := make([]sortKey, len(ids))
	for i, id := range ids {
		c, err := ParseCellID(id)
		keys[i] = sortKey{coord: c, valid: err == nil, id: id}
	}
	sort.Slice(keys, func(i, j int) bool {
		a, b := keys[i], keys[j]
		switch {
		case !a.valid && !b.valid:
			return a.id < b.id
		case !a.valid:
			return false
		case !b.valid:
			return true
		}
		if a.coord.Row != b.coord.Row {
			return a.coord.Row < b.coord.Row
		}
		return a.coord.Col < b.coord.Col
	})
	for i, k := range keys {
		ids[i] = k.id
	}
}
