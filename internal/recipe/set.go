package recipe

// Set is a collection of ingredient names used to mark ingredients as
// already owned.
type Set interface {
	// Contains reports whether name is in the set. No normalisation is applied.
	Contains(name string) bool

	// Size returns the number of names in the set.
	Size() int
}

// nameSet implements Set using a map for O(1) lookups.
type nameSet struct {
	names map[string]struct{}
}

// NewNameSet creates a set holding names exactly as given.
func NewNameSet(names ...string) Set {
	s := &nameSet{
		names: make(map[string]struct{}, len(names)),
	}
	for _, n := range names {
		s.add(n)
	}
	return s
}

// Contains checks if a name exists in the set.
func (s *nameSet) Contains(name string) bool {
	_, exists := s.names[name]
	return exists
}

// Size returns the number of names in the set.
func (s *nameSet) Size() int {
	return len(s.names)
}

func (s *nameSet) add(name string) {
	s.names[name] = struct{}{}
}

// unionSet reports membership in any of its members.
type unionSet []Set

// Union combines sets without copying them. Nil members are skipped.
func Union(sets ...Set) Set {
	u := make(unionSet, 0, len(sets))
	for _, s := range sets {
		if s != nil {
			u = append(u, s)
		}
	}
	return u
}

func (u unionSet) Contains(name string) bool {
	for _, s := range u {
		if s.Contains(name) {
			return true
		}
	}
	return false
}

// Size is an upper bound: names present in several members are counted once
// per member.
func (u unionSet) Size() int {
	n := 0
	for _, s := range u {
		n += s.Size()
	}
	return n
}
