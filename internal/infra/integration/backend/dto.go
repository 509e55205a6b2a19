package backend

import "github.com/xavierca1/farmareach/internal/entity"

type LeadRow struct {
	ID           int64  `json:"id"`
	Nombre       string `json:"nombre"`
	Direccion    string `json:"direccion"`
	Zona         string `json:"zona"`
	CodigoPostal string `json:"codigo_postal"`
	Telefono     string `json:"telefono"`
	Website      string `json:"website"`
	Email        string `json:"email"`
	Fuente       string `json:"fuente"`
	EstadoEnvio  string `json:"estado_envio"`
}

type ListLeadsParams struct {
	Limit        int
	Skip         int
	OnlyPending  bool
	RequireEmail bool
	Fuente       string
}

type CaptureRequest struct {
	Zona         string `json:"zona"`
	CodigoPostal string `json:"codigo_postal"`
	Fuente       string `json:"fuente"`
	QueryExtra   string `json:"query_extra"`
	MaxItems     int    `json:"max_items"`
}

type CaptureResponse struct {
	Criterio string   `json:"criterio"`
	Found    int      `json:"found"`
	Saved    int      `json:"saved"`
	Warnings []string `json:"warnings"`
}

type CampaignRequest struct {
	Asunto         string  `json:"asunto"`
	Remitente      string  `json:"remitente"`
	Firma          string  `json:"firma"`
	PropuestaValor string  `json:"propuesta_valor"`
	TemplateText   string  `json:"template_text"`
	OnlyPending    bool    `json:"only_pending"`
	LeadIDs        []int64 `json:"lead_ids"`
}

type CampaignResponse struct {
	Total  int `json:"total"`
	Sent   int `json:"sent"`
	Errors int `json:"errors"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Nombre   string `json:"nombre"`
	Password string `json:"password"`
}

type AuthResponse struct {
	AccessToken string      `json:"access_token"`
	TokenType   string      `json:"token_type"`
	User        entity.User `json:"user"`
}

// RegisterResponse covers both register variants the backend has shipped;
// the console only reads Message.
type RegisterResponse struct {
	Message                   string `json:"message"`
	RequiresEmailVerification bool   `json:"requires_email_verification"`
	AccessToken               string `json:"access_token"`
}

type HealthResponse struct {
	Status       string          `json:"status"`
	Capabilities map[string]bool `json:"capabilities"`
}

type EnrichResponse struct {
	Candidates int `json:"candidates"`
	Enriched   int `json:"enriched"`
}

type DefaultTemplateResponse struct {
	Template string `json:"template"`
}

type errorPayload struct {
	Detail any `json:"detail"`
}
