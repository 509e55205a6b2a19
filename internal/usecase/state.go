package usecase

import (
	"sync"

	"github.com/xavierca1/farmareach/internal/entity"
)

// AppState is the single in-memory source of truth for one operator.
// Every id in the selection exists in the lead collection.
type AppState struct {
	mu        sync.RWMutex
	leads     []entity.Lead
	selected  map[int64]struct{}
	templates []entity.Template
	history   []entity.HistoryEntry
	// epoch moves on every reset so loads started before it can be dropped.
	epoch uint64
}

type Snapshot struct {
	Leads     []entity.Lead         `json:"leads"`
	Selected  []int64               `json:"selected"`
	Templates []entity.Template     `json:"templates"`
	History   []entity.HistoryEntry `json:"history"`
}

func NewAppState() *AppState {
	return &AppState{selected: make(map[int64]struct{})}
}

// ReplaceLeads installs an authoritative lead list and prunes the selection.
func (s *AppState) ReplaceLeads(leads []entity.Lead) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.replaceLeads(leads)
}

// Epoch identifies the current lead generation.
func (s *AppState) Epoch() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.epoch
}

// ReplaceLeadsSince installs leads only if no reset happened after epoch was
// read. It reports whether the list was installed.
func (s *AppState) ReplaceLeadsSince(epoch uint64, leads []entity.Lead) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.epoch != epoch {
		return false
	}
	s.replaceLeads(leads)
	return true
}

func (s *AppState) replaceLeads(leads []entity.Lead) {
	s.leads = append([]entity.Lead(nil), leads...)
	present := make(map[int64]struct{}, len(s.leads))
	for _, l := range s.leads {
		present[l.ID] = struct{}{}
	}
	for id := range s.selected {
		if _, ok := present[id]; !ok {
			delete(s.selected, id)
		}
	}
}

func (s *AppState) RemoveLead(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, l := range s.leads {
		if l.ID == id {
			s.leads = append(s.leads[:i:i], s.leads[i+1:]...)
			delete(s.selected, id)
			return true
		}
	}
	return false
}

func (s *AppState) MarkSent(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.leads {
		if s.leads[i].ID == id {
			s.leads[i].Status = entity.LeadStatusSent
			return true
		}
	}
	return false
}

// ResetLeads empties the collection and the selection (logout path).
func (s *AppState) ResetLeads() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.leads = nil
	s.selected = make(map[int64]struct{})
	s.epoch++
}

func (s *AppState) Lead(id int64) (entity.Lead, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, l := range s.leads {
		if l.ID == id {
			l.Checked = s.isSelected(id)
			return l, true
		}
	}
	return entity.Lead{}, false
}

// Select adds ids that exist; unknown ids are ignored. It returns how many
// ids are now newly selected.
func (s *AppState) Select(ids ...int64) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	added := 0
	for _, id := range ids {
		if !s.hasLead(id) || s.isSelected(id) {
			continue
		}
		s.selected[id] = struct{}{}
		added++
	}
	return added
}

func (s *AppState) Deselect(ids ...int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range ids {
		delete(s.selected, id)
	}
}

func (s *AppState) SelectAll() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, l := range s.leads {
		s.selected[l.ID] = struct{}{}
	}
	return len(s.leads)
}

func (s *AppState) ClearSelection() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = make(map[int64]struct{})
}

// SelectedWithEmail returns selected lead ids that have an email, in lead order.
func (s *AppState) SelectedWithEmail() []int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var ids []int64
	for _, l := range s.leads {
		if s.isSelected(l.ID) && l.HasEmail() {
			ids = append(ids, l.ID)
		}
	}
	return ids
}

// UpsertTemplate replaces the template with the same name or appends it.
func (s *AppState) UpsertTemplate(t entity.Template) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.templates {
		if s.templates[i].Name == t.Name {
			s.templates[i] = t
			return
		}
	}
	s.templates = append(s.templates, t)
}

func (s *AppState) DeleteTemplate(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, t := range s.templates {
		if t.ID == id {
			s.templates = append(s.templates[:i:i], s.templates[i+1:]...)
			return true
		}
	}
	return false
}

func (s *AppState) Template(id int64) (entity.Template, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, t := range s.templates {
		if t.ID == id {
			return t, true
		}
	}
	return entity.Template{}, false
}

// AppendHistory puts e first; history is newest first.
func (s *AppState) AppendHistory(e entity.HistoryEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.history = append([]entity.HistoryEntry{e}, s.history...)
}

func (s *AppState) ClearHistory() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = nil
}

// Snapshot returns deep enough copies for readers; leads carry Checked.
func (s *AppState) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := Snapshot{
		Leads:     make([]entity.Lead, len(s.leads)),
		Selected:  make([]int64, 0, len(s.selected)),
		Templates: append([]entity.Template(nil), s.templates...),
		History:   append([]entity.HistoryEntry(nil), s.history...),
	}
	for i, l := range s.leads {
		l.Checked = s.isSelected(l.ID)
		snap.Leads[i] = l
		if l.Checked {
			snap.Selected = append(snap.Selected, l.ID)
		}
	}
	return snap
}

func (s *AppState) hasLead(id int64) bool {
	for _, l := range s.leads {
		if l.ID == id {
			return true
		}
	}
	return false
}

func (s *AppState) isSelected(id int64) bool {
	_, ok := s.selected[id]
	return ok
}
