package entity

// Template is kept only in memory. Name is the effective upsert key even
// though ID is what the rest of the console refers to.
type Template struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}
