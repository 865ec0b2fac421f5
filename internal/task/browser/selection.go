package browser

import "task-console/internal/model"

// selection is an insertion-ordered set of task ids.
type selection struct {
	order []string
	set   map[string]struct{}
}

func newSelection() selection {
	return selection{set: map[string]struct{}{}}
}

func (s *selection) add(id string) {
	if _, ok := s.set[id]; ok {
		return
	}
	s.set[id] = struct{}{}
	s.order = append(s.order, id)
}

func (s *selection) remove(id string) {
	if _, ok := s.set[id]; !ok {
		return
	}
	delete(s.set, id)
	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

func (s *selection) has(id string) bool {
	_, ok := s.set[id]
	return ok
}

func (s *selection) len() int { return len(s.order) }

func (s *selection) ids() []string {
	return append([]string(nil), s.order...)
}

func (s *selection) clear() {
	s.order = nil
	s.set = map[string]struct{}{}
}

func (s *selection) reset(ids []string) {
	s.clear()
	for _, id := range ids {
		s.add(id)
	}
}

// retain drops ids that are no longer in tasks.
func (s *selection) retain(tasks []model.Task) {
	keep := make(map[string]struct{}, len(tasks))
	for _, t := range tasks {
		keep[t.ID] = struct{}{}
	}
	for _, id := range s.ids() {
		if _, ok := keep[id]; !ok {
			s.remove(id)
		}
	}
}

func (b *implBrowser) Toggle(id string, checked bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if checked {
		b.sel.add(id)
		return
	}
	b.sel.remove(id)
}

// ToggleAll selects every task of the filtered view, or clears the selection.
func (b *implBrowser) ToggleAll(checked bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !checked {
		b.sel.clear()
		return
	}
	for _, t := range b.filtered {
		b.sel.add(t.ID)
	}
}

func (b *implBrowser) IsSelected(id string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.sel.has(id)
}

func (b *implBrowser) HasSelection() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.sel.len() > 0
}

func (b *implBrowser) allSelectedLocked() bool {
	return len(b.filtered) > 0 && b.sel.len() == len(b.filtered)
}

func (b *implBrowser) AllSelected() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.allSelectedLocked()
}
