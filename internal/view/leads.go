package view

import (
	"fmt"
	"math"
	"strings"

	"github.com/xavierca1/farmareach/internal/entity"
)

type LeadFilter struct {
	Query  string            `json:"q"`
	Status entity.LeadStatus `json:"status"`
}

// FilterLeads keeps leads whose name, city or email contains the query
// (case-insensitive) and whose status equals the filter. Empty parts of
// the filter match everything.
func FilterLeads(leads []entity.Lead, f LeadFilter) []entity.Lead {
	q := strings.ToLower(strings.TrimSpace(f.Query))

	out := make([]entity.Lead, 0, len(leads))
	for _, l := range leads {
		if q != "" &&
			!strings.Contains(strings.ToLower(l.Name), q) &&
			!strings.Contains(strings.ToLower(l.Ciudad), q) &&
			!strings.Contains(strings.ToLower(l.Email), q) {
			continue
		}
		if f.Status != "" && l.Status != f.Status {
			continue
		}
		out = append(out, l)
	}
	return out
}

type LeadRow struct {
	ID          int64             `json:"id"`
	Name        string            `json:"name"`
	Barrio      string            `json:"barrio"`
	Ciudad      string            `json:"ciudad"`
	CP          string            `json:"cp"`
	Phone       string            `json:"phone"`
	Email       string            `json:"email"`
	Rating      string            `json:"rating"`
	Status      entity.LeadStatus `json:"status"`
	StatusLabel string            `json:"status_label"`
	Checked     bool              `json:"checked"`
}

func LeadRows(leads []entity.Lead) []LeadRow {
	rows := make([]LeadRow, len(leads))
	for i, l := range leads {
		email := l.Email
		if email == "" {
			email = "-"
		}
		rows[i] = LeadRow{
			ID:          l.ID,
			Name:        l.Name,
			Barrio:      l.Barrio,
			Ciudad:      l.Ciudad,
			CP:          l.CP,
			Phone:       l.Phone,
			Email:       email,
			Rating:      l.Rating,
			Status:      l.Status,
			StatusLabel: l.Status.Label(),
			Checked:     l.Checked,
		}
	}
	return rows
}

func CountLabel(n int) string {
	if n == 1 {
		return "1 farmacia"
	}
	return fmt.Sprintf("%d farmacias", n)
}

type Stats struct {
	Total     int    `json:"total"`
	WithEmail int    `json:"with_email"`
	Sent      int    `json:"sent"`
	Rate      string `json:"rate"`
}

func ComputeStats(leads []entity.Lead) Stats {
	s := Stats{Total: len(leads), Rate: "-"}
	for _, l := range leads {
		if l.HasEmail() {
			s.WithEmail++
		}
		if l.Status == entity.LeadStatusSent {
			s.Sent++
		}
	}
	if s.Total > 0 {
		s.Rate = fmt.Sprintf("%d%%", int(math.Round(float64(s.Sent)/float64(s.Total)*100)))
	}
	return s
}

type LeadsPage struct {
	Rows       []LeadRow `json:"rows"`
	CountLabel string    `json:"count_label"`
	Badge      int       `json:"badge"`
	Stats      Stats     `json:"stats"`
}

// Leads is the full projection behind the leads table.
func Leads(leads []entity.Lead, f LeadFilter) LeadsPage {
	visible := FilterLeads(leads, f)
	return LeadsPage{
		Rows:       LeadRows(visible),
		CountLabel: CountLabel(len(visible)),
		Badge:      len(leads),
		Stats:      ComputeStats(leads),
	}
}
