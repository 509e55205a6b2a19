package entity

type HistoryEntry struct {
	Date    string     `json:"date"`
	Name    string     `json:"name"`
	Email   string     `json:"email"`
	Subject string     `json:"subject"`
	Status  LeadStatus `json:"status"`
}
