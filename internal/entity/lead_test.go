package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusFromAPI(t *testing.T) {
	cases := map[string]LeadStatus{
		"enviado":   LeadStatusSent,
		"error":     LeadStatusError,
		"pendiente": LeadStatusPending,
		"nuevo":     LeadStatusNew,
		"":          LeadStatusNew,
		"ENVIADO":   LeadStatusNew,
		"rebotado":  LeadStatusNew,
	}

	for in, want := range cases {
		assert.Equal(t, want, StatusFromAPI(in), "estado_envio=%q", in)
	}
}

func TestLeadStatusLabel(t *testing.T) {
	assert.Equal(t, "Nuevo", LeadStatusNew.Label())
	assert.Equal(t, "Pendiente", LeadStatusPending.Label())
	assert.Equal(t, "Enviado", LeadStatusSent.Label())
	assert.Equal(t, "Error", LeadStatusError.Label())
	assert.Equal(t, "Nuevo", LeadStatus("weird").Label())
}

func TestSourceToAPI(t *testing.T) {
	assert.Equal(t, "google_maps", SourceGoogle.ToAPI())
	assert.Equal(t, "paginas_amarillas", SourcePaginas.ToAPI())
	assert.Equal(t, "openstreetmap", SourceOpenStreetMap.ToAPI())
	assert.Equal(t, "openstreetmap", Source("").ToAPI())
	assert.Equal(t, "openstreetmap", Source("bing").ToAPI())
}
