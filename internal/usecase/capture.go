package usecase

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/xavierca1/farmareach/internal/entity"
	"github.com/xavierca1/farmareach/internal/infra/integration/backend"
)

type SearchType string

const (
	SearchByCP     SearchType = "cp"
	SearchByCiudad SearchType = "ciudad"
	SearchByZona   SearchType = "zona"
)

const (
	DefaultMaxItems = 20
	MinMaxItems     = 5
	MaxMaxItems     = 100
)

type CaptureInput struct {
	SearchType SearchType    `json:"search_type"`
	CP         string        `json:"cp"`
	Ciudad     string        `json:"ciudad"`
	Zona       string        `json:"zona"`
	Source     entity.Source `json:"source"`
	QueryExtra string        `json:"query_extra"`
	MaxItems   int           `json:"max_items"`
}

// Params picks the search parameters for the active search type. Only the
// first of several comma separated postal codes is used.
func (in CaptureInput) Params() (zona, codigoPostal string) {
	switch in.searchType() {
	case SearchByCP:
		first, _, _ := strings.Cut(strings.TrimSpace(in.CP), ",")
		return "", strings.TrimSpace(first)
	case SearchByCiudad:
		return strings.TrimSpace(in.Ciudad), ""
	default:
		return strings.TrimSpace(in.Zona), ""
	}
}

// searchType falls back to the first filled field, postal code first, when
// the type is missing or unknown.
func (in CaptureInput) searchType() SearchType {
	switch in.SearchType {
	case SearchByCP, SearchByCiudad, SearchByZona:
		return in.SearchType
	}
	switch {
	case strings.TrimSpace(in.CP) != "":
		return SearchByCP
	case strings.TrimSpace(in.Ciudad) != "":
		return SearchByCiudad
	default:
		return SearchByZona
	}
}

// ClampMaxItems applies the backend's bounds; 0 means the default.
func ClampMaxItems(n, def int) int {
	if n == 0 {
		n = def
	}
	if n < MinMaxItems {
		return MinMaxItems
	}
	if n > MaxMaxItems {
		return MaxMaxItems
	}
	return n
}

type CaptureResult struct {
	Criterio string   `json:"criterio"`
	Found    int      `json:"found"`
	Saved    int      `json:"saved"`
	Warnings []string `json:"warnings"`
}

type CaptureUseCase struct {
	api       Backend
	sync      *LeadSync
	flow      *Flow
	presenter Presenter
	activity  *ActivityLog
	text      Translator
	recorder  Recorder
	logger    *zap.Logger
	maxItems  int
}

func NewCaptureUseCase(api Backend, sync *LeadSync, presenter Presenter, activity *ActivityLog, text Translator, logger *zap.Logger) *CaptureUseCase {
	return &CaptureUseCase{
		api:       api,
		sync:      sync,
		flow:      NewFlow(FlowCapture),
		presenter: presenter,
		activity:  activity,
		text:      text,
		recorder:  nopRecorder{},
		logger:    logger,
		maxItems:  DefaultMaxItems,
	}
}

func (uc *CaptureUseCase) WithRecorder(r Recorder) {
	uc.recorder = r
}

// WithDefaultMaxItems sets the cap used when the operator leaves it empty.
func (uc *CaptureUseCase) WithDefaultMaxItems(n int) {
	uc.maxItems = ClampMaxItems(n, DefaultMaxItems)
}

func (uc *CaptureUseCase) Flow() *Flow {
	return uc.flow
}

// Run executes one capture: validate, POST /capture, reload the leads.
// While a capture is running further calls are rejected with ErrFlowBusy.
func (uc *CaptureUseCase) Run(ctx context.Context, input CaptureInput) (*CaptureResult, error) {
	if uc.flow.State() == FlowRunning {
		uc.recorder.CaptureFinished(outcomeRejected, 0, 0)
		return nil, ErrFlowBusy
	}

	zona, cp := input.Params()
	if err := validateSearch(zona, cp, uc.text); err != nil {
		uc.report(err)
		uc.recorder.CaptureFinished(outcomeRejected, 0, 0)
		return nil, err
	}

	run, err := uc.flow.Begin()
	if err != nil {
		uc.recorder.CaptureFinished(outcomeRejected, 0, 0)
		return nil, err
	}
	uc.presenter.SetBusy(FlowCapture, true)
	defer uc.presenter.SetBusy(FlowCapture, false)

	uc.presenter.ResetFlow(FlowCapture)
	uc.presenter.Progress(FlowCapture, 20, uc.text.T("capture_step_connect", nil))
	uc.presenter.FlowLog(FlowCapture, entity.ActivityInfo, uc.text.T("capture_connecting", nil))

	fuente := input.Source.ToAPI()
	resp, err := uc.api.Capture(ctx, backend.CaptureRequest{
		Zona:         zona,
		CodigoPostal: cp,
		Fuente:       fuente,
		QueryExtra:   input.QueryExtra,
		MaxItems:     ClampMaxItems(input.MaxItems, uc.maxItems),
	})
	if err != nil {
		return nil, uc.fail(run, err)
	}

	uc.presenter.Progress(FlowCapture, 70, uc.text.T("capture_step_update", nil))
	uc.presenter.FlowLog(FlowCapture, entity.ActivitySuccess, uc.text.T("capture_found", map[string]any{"Found": resp.Found}))
	for _, w := range resp.Warnings {
		uc.presenter.FlowLog(FlowCapture, entity.ActivityWarn, w)
	}

	if err := uc.sync.Load(ctx); err != nil {
		return nil, uc.fail(run, err)
	}

	uc.presenter.Progress(FlowCapture, 100, uc.text.T("capture_step_done", nil))
	uc.presenter.FlowLog(FlowCapture, entity.ActivitySuccess, uc.text.T("capture_saved", map[string]any{"Saved": resp.Saved}))
	uc.activity.Record(ctx, entity.ActivitySuccess,
		uc.text.T("capture_activity", map[string]any{"Source": fuente, "Found": resp.Found}))
	uc.presenter.Toast(entity.ActivitySuccess,
		uc.text.T("capture_done", map[string]any{"Found": resp.Found, "Saved": resp.Saved}))

	_ = uc.flow.Finish(run, nil)
	uc.recorder.CaptureFinished(outcomeOK, resp.Found, resp.Saved)
	uc.logger.Info("capture completed",
		zap.String("fuente", fuente),
		zap.Int("found", resp.Found),
		zap.Int("saved", resp.Saved),
		zap.Int("warnings", len(resp.Warnings)),
	)

	return &CaptureResult{
		Criterio: resp.Criterio,
		Found:    resp.Found,
		Saved:    resp.Saved,
		Warnings: resp.Warnings,
	}, nil
}

// Reset clears the capture log and returns a finished machine to Idle.
func (uc *CaptureUseCase) Reset() error {
	if err := uc.flow.Reset(); err != nil {
		return err
	}
	uc.presenter.ResetFlow(FlowCapture)
	return nil
}

func (uc *CaptureUseCase) fail(run uint64, err error) error {
	uc.report(err)
	_ = uc.flow.Finish(run, err)
	uc.recorder.CaptureFinished(outcomeError, 0, 0)
	uc.logger.Warn("capture failed", zap.Error(err))
	return err
}

func (uc *CaptureUseCase) report(err error) {
	msg := UserMessage(err, uc.text)
	if msg == "" {
		msg = uc.text.T("capture_failed", nil)
	}
	uc.presenter.FlowLog(FlowCapture, entity.ActivityError, msg)
	uc.presenter.Toast(entity.ActivityError, msg)
}
