package backend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xavierca1/farmareach/internal/entity"
)

func TestMapLead(t *testing.T) {
	lead := MapLead(LeadRow{
		ID:           7,
		Nombre:       "Farmacia Sol",
		Direccion:    "C/ Mayor 1",
		Zona:         "Madrid",
		CodigoPostal: "28001",
		Telefono:     "600000000",
		Email:        "info@sol.es",
		Website:      "sol.es",
		Fuente:       "openstreetmap",
		EstadoEnvio:  "enviado",
	})

	assert.Equal(t, entity.Lead{
		ID:      7,
		Name:    "Farmacia Sol",
		Ciudad:  "Madrid",
		CP:      "28001",
		Barrio:  "C/ Mayor 1",
		Phone:   "600000000",
		Email:   "info@sol.es",
		Rating:  "-",
		Website: "sol.es",
		Source:  "openstreetmap",
		Status:  entity.LeadStatusSent,
	}, lead)
}

func TestMapLeadsUnknownStatusIsNew(t *testing.T) {
	leads := MapLeads([]LeadRow{{ID: 1, EstadoEnvio: "archivado"}, {ID: 2}})
	assert.Len(t, leads, 2)
	assert.Equal(t, entity.LeadStatusNew, leads[0].Status)
	assert.Equal(t, entity.LeadStatusNew, leads[1].Status)
	assert.False(t, leads[0].Checked)
}
