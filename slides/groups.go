package slides

// GroupIndex maps group id to ids of its member elements. Built once per
// template, it answers "what else goes away with this element".
type GroupIndex map[string][]string

// BuildGroupIndex collects group membership of elements.
func BuildGroupIndex(elements []Element) GroupIndex {
	idx := make(GroupIndex)
	for _, el := range elements {
		b := el.Frame()
		if len(b.GroupID) == 0 {
			continue
		}
		idx[b.GroupID] = append(idx[b.GroupID], b.ID)
	}
	return idx
}

// Members returns ids of all elements in the group.
func (g GroupIndex) Members(groupID string) []string {
	if len(groupID) == 0 {
		return nil
	}
	return g[groupID]
}

// Removal accumulates ids of elements to be dropped from a slide, expanding
// every element to its whole group.
type Removal struct {
	groups  GroupIndex
	ids     map[string]struct{}
	dropped map[string]struct{}
}

func NewRemoval(groups GroupIndex) *Removal {
	return &Removal{
		groups:  groups,
		ids:     make(map[string]struct{}),
		dropped: make(map[string]struct{}),
	}
}

// Add marks element and all members of its group for removal.
func (r *Removal) Add(el Element) {
	b := el.Frame()
	r.ids[b.ID] = struct{}{}
	if len(b.GroupID) > 0 {
		r.dropped[b.GroupID] = struct{}{}
	}
	for _, id := range r.groups.Members(b.GroupID) {
		r.ids[id] = struct{}{}
	}
}

// Has reports whether element with id is marked.
func (r *Removal) Has(id string) bool {
	_, ok := r.ids[id]
	return ok
}

// Len returns number of marked element ids.
func (r *Removal) Len() int {
	return len(r.ids)
}

// Apply returns elements which were not marked, preserving order. Elements
// replaced after marking (new id, same group) go away with their group too.
func (r *Removal) Apply(elements []Element) []Element {
	if len(r.ids) == 0 {
		return elements
	}
	out := make([]Element, 0, len(elements))
	for _, el := range elements {
		b := el.Frame()
		if r.Has(b.ID) {
			continue
		}
		if _, ok := r.dropped[b.GroupID]; ok && len(b.GroupID) > 0 {
			continue
		}
		out = append(out, el)
	}
	return out
}
