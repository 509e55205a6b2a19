package view

import (
	"fmt"
	"math"

	"github.com/xavierca1/farmareach/internal/entity"
)

const DefaultSendDelaySeconds = 30

type CampaignSummary struct {
	Selected  int    `json:"selected"`
	WithEmail int    `json:"with_email"`
	Estimate  string `json:"estimate"`
}

// Summarize estimates the send duration from the per-mail delay.
func Summarize(leads []entity.Lead, delaySeconds int) CampaignSummary {
	if delaySeconds <= 0 {
		delaySeconds = DefaultSendDelaySeconds
	}

	var s CampaignSummary
	for _, l := range leads {
		if !l.Checked {
			continue
		}
		s.Selected++
		if l.HasEmail() {
			s.WithEmail++
		}
	}

	minutes := int(math.Ceil(float64(s.WithEmail*delaySeconds) / 60))
	s.Estimate = "-"
	if minutes > 0 {
		s.Estimate = fmt.Sprintf("~%dmin", minutes)
	}
	return s
}

type HistoryRow struct {
	Date        string `json:"date"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Subject     string `json:"subject"`
	StatusLabel string `json:"status_label"`
}

func HistoryRows(entries []entity.HistoryEntry) []HistoryRow {
	rows := make([]HistoryRow, len(entries))
	for i, e := range entries {
		rows[i] = HistoryRow{
			Date:        e.Date,
			Name:        e.Name,
			Email:       e.Email,
			Subject:     e.Subject,
			StatusLabel: e.Status.Label(),
		}
	}
	return rows
}

type TemplateOption struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Excerpt string `json:"excerpt"`
}

const excerptLen = 40

func TemplateOptions(templates []entity.Template) []TemplateOption {
	opts := make([]TemplateOption, len(templates))
	for i, t := range templates {
		excerpt := []rune(t.Subject)
		if len(excerpt) > excerptLen {
			excerpt = excerpt[:excerptLen]
		}
		opts[i] = TemplateOption{ID: t.ID, Name: t.Name, Excerpt: string(excerpt) + "..."}
	}
	return opts
}
