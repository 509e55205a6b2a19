package usecase

import (
	"context"
	"regexp"
	"strings"
	"sync"

	"github.com/xavierca1/farmareach/internal/entity"
)

var templateVarRewrites = []struct {
	pattern *regexp.Regexp
	replace string
}{
	{regexp.MustCompile(`\{\{\s*nombre_farmacia\s*\}\}`), "{{ nombre }}"},
	{regexp.MustCompile(`\{\{\s*ciudad\s*\}\}`), "{{ zona }}"},
	{regexp.MustCompile(`\{\{\s*codigo_postal\s*\}\}`), "{{ codigo_postal }}"},
}

// NormalizeTemplateVars rewrites the legacy placeholders to the ones the
// backend renders. Applying it twice changes nothing.
func NormalizeTemplateVars(text string) string {
	for _, r := range templateVarRewrites {
		text = r.pattern.ReplaceAllString(text, r.replace)
	}
	return text
}

// SamplePharmacy fills the preview when there are no leads yet.
var SamplePharmacy = entity.Lead{
	Name:   "Farmacia Central",
	Ciudad: "Madrid",
	CP:     "28001",
	Barrio: "Centro",
	Phone:  "612345678",
	Rating: "4.5",
}

type Preview struct {
	From    string `json:"from,omitempty"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// TemplateBook manages the operator's templates. Ids come from the clock in
// milliseconds and never repeat within a process.
type TemplateBook struct {
	state     *AppState
	api       Backend
	presenter Presenter
	activity  *ActivityLog
	text      Translator
	clock     Clock

	mu     sync.Mutex
	lastID int64
}

func NewTemplateBook(state *AppState, api Backend, presenter Presenter, activity *ActivityLog, text Translator, clock Clock) *TemplateBook {
	return &TemplateBook{state: state, api: api, presenter: presenter, activity: activity, text: text, clock: clock}
}

// Save upserts by name; the stored template always gets a fresh id.
func (b *TemplateBook) Save(ctx context.Context, name, subject, body string) (entity.Template, error) {
	if err := validateTemplate(name, subject, body, b.text); err != nil {
		b.presenter.Toast(entity.ActivityError, UserMessage(err, b.text))
		return entity.Template{}, err
	}

	tpl := entity.Template{ID: b.nextID(), Name: name, Subject: subject, Body: body}
	b.state.UpsertTemplate(tpl)

	b.presenter.Toast(entity.ActivitySuccess, b.text.T("template_saved", map[string]any{"Name": name}))
	b.activity.Record(ctx, entity.ActivitySuccess, b.text.T("template_saved_activity", map[string]any{"Name": name}))
	return tpl, nil
}

// Load fetches a template for editing.
func (b *TemplateBook) Load(id int64) (entity.Template, error) {
	tpl, ok := b.state.Template(id)
	if !ok {
		return entity.Template{}, &DomainError{Code: "template_not_found", Message: b.text.T("template_not_found", nil)}
	}
	b.presenter.Toast(entity.ActivitySuccess, b.text.T("template_loaded", map[string]any{"Name": tpl.Name}))
	return tpl, nil
}

func (b *TemplateBook) Delete(id int64) bool {
	return b.state.DeleteTemplate(id)
}

func (b *TemplateBook) Get(id int64) (entity.Template, bool) {
	return b.state.Template(id)
}

func (b *TemplateBook) List() []entity.Template {
	return b.state.Snapshot().Templates
}

// Preview renders subject and body against the first lead, or the sample
// pharmacy when the collection is empty.
func (b *TemplateBook) Preview(subject, body, from string) Preview {
	sample := SamplePharmacy
	if leads := b.state.Snapshot().Leads; len(leads) > 0 {
		sample = leads[0]
	}

	r := strings.NewReplacer(
		"{{nombre_farmacia}}", sample.Name,
		"{{farmaceutico}}", "Responsable",
		"{{ciudad}}", sample.Ciudad,
		"{{codigo_postal}}", sample.CP,
		"{{direccion}}", "C/ "+sample.Barrio,
		"{{telefono}}", sample.Phone,
		"{{rating}}", sample.Rating,
		"{{fecha_hoy}}", b.clock().Format("2/1/2006"),
	)

	b.presenter.Toast(entity.ActivitySuccess, b.text.T("template_preview", nil))
	return Preview{From: from, Subject: r.Replace(subject), Body: r.Replace(body)}
}

// Default returns the backend's default outreach template text.
func (b *TemplateBook) Default(ctx context.Context) (string, error) {
	text, err := b.api.DefaultTemplate(ctx)
	if err != nil {
		b.presenter.Toast(entity.ActivityError, UserMessage(err, b.text))
		return "", err
	}
	return text, nil
}

func (b *TemplateBook) nextID() int64 {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.clock().UnixMilli()
	if id <= b.lastID {
		id = b.lastID + 1
	}
	b.lastID = id
	return id
}
