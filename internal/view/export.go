package view

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"

	"github.com/xavierca1/farmareach/internal/entity"
)

const ExportFilename = "farmareach-leads.csv"

var ErrNothingToExport = errors.New("no leads to export")

var exportHeader = []string{"Nombre", "Ciudad", "CP", "Telefono", "Email", "Rating", "Estado"}

func ExportCSV(leads []entity.Lead) ([]byte, error) {
	if len(leads) == 0 {
		return nil, ErrNothingToExport
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(exportHeader); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	for _, l := range leads {
		record := []string{l.Name, l.Ciudad, l.CP, l.Phone, l.Email, l.Rating, string(l.Status)}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("write csv row %d: %w", l.ID, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}
