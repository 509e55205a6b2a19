package entity

// Source is the capture provider picked in the search screen.
type Source string

const (
	SourceGoogle        Source = "google"
	SourcePaginas       Source = "paginas"
	SourceOpenStreetMap Source = "openstreetmap"
)

// ToAPI maps the internal identifier to the backend fuente value.
func (s Source) ToAPI() string {
	switch s {
	case SourceGoogle:
		return "google_maps"
	case SourcePaginas:
		return "paginas_amarillas"
	default:
		return "openstreetmap"
	}
}
