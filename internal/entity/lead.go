package entity

type LeadStatus string

const (
	LeadStatusNew     LeadStatus = "new"
	LeadStatusPending LeadStatus = "pending"
	LeadStatusSent    LeadStatus = "sent"
	LeadStatusError   LeadStatus = "error"
)

// Lead is a pharmacy contact as the console sees it. Checked is UI-only and
// never travels to the backend.
type Lead struct {
	ID      int64      `json:"id"`
	Name    string     `json:"name"`
	Ciudad  string     `json:"ciudad"`
	CP      string     `json:"cp"`
	Barrio  string     `json:"barrio"`
	Phone   string     `json:"phone"`
	Email   string     `json:"email"`
	Rating  string     `json:"rating"`
	Website string     `json:"website"`
	Source  string     `json:"source"`
	Status  LeadStatus `json:"status"`
	Checked bool       `json:"checked"`
}

// StatusFromAPI translates the backend estado_envio vocabulary. Anything
// unknown is a new lead.
func StatusFromAPI(estado string) LeadStatus {
	switch estado {
	case "enviado":
		return LeadStatusSent
	case "error":
		return LeadStatusError
	case "pendiente":
		return LeadStatusPending
	default:
		return LeadStatusNew
	}
}

func (s LeadStatus) Label() string {
	switch s {
	case LeadStatusPending:
		return "Pendiente"
	case LeadStatusSent:
		return "Enviado"
	case LeadStatusError:
		return "Error"
	default:
		return "Nuevo"
	}
}

func (l *Lead) HasEmail() bool {
	return l.Email != ""
}
