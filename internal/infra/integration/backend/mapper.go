package backend

import "github.com/xavierca1/farmareach/internal/entity"

// MapLead turns a backend row into the console shape. The backend has no
// rating, so it is always shown as "-".
func MapLead(row LeadRow) entity.Lead {
	return entity.Lead{
		ID:      row.ID,
		Name:    row.Nombre,
		Ciudad:  row.Zona,
		CP:      row.CodigoPostal,
		Barrio:  row.Direccion,
		Phone:   row.Telefono,
		Email:   row.Email,
		Rating:  "-",
		Website: row.Website,
		Source:  row.Fuente,
		Status:  entity.StatusFromAPI(row.EstadoEnvio),
	}
}

func MapLeads(rows []LeadRow) []entity.Lead {
	leads := make([]entity.Lead, 0, len(rows))
	for _, row := range rows {
		leads = append(leads, MapLead(row))
	}
	return leads
}
