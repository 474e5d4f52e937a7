package interaction

// idSet is a set of ids that remembers insertion order.
type idSet struct {
	order []string
	index map[string]struct{}
}

func newIDSet(ids []string) *idSet {
	s := &idSet{index: make(map[string]struct{}, len(ids))}
	for _, id := range ids {
		s.add(id)
	}
	return s
}

func (s *idSet) has(id string) bool {
	_, ok := s.index[id]
	return ok
}

func (s *idSet) add(id string) {
	if id == "" || s.has(id) {
		return
	}
	s.index[id] = struct{}{}
	s.order = append(s.order, id)
}

func (s *idSet) remove(id string) {
	if !s.has(id) {
		return
	}
	delete(s.index, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// toggle flips membership and reports whether id is now a member.
func (s *idSet) toggle(id string) bool {
	if s.has(id) {
		s.remove(id)
		return false
	}
	s.add(id)
	return true
}

func (s *idSet) list() []string {
	return append([]string{}, s.order...)
}

func (s *idSet) len() int {
	return len(s.order)
}
