package view

import (
	"sync"
	"time"

	"github.com/xavierca1/farmareach/internal/entity"
	"github.com/xavierca1/farmareach/internal/usecase"
)

const (
	toastLifetime  = 3500 * time.Millisecond
	maxActivity    = 200
	maxFlowLogSize = 500
)

type Toast struct {
	Level   entity.ActivityLevel `json:"level"`
	Message string               `json:"message"`
	At      time.Time            `json:"at"`
	Visible bool                 `json:"visible"`
}

type LogLine struct {
	At      time.Time            `json:"at"`
	Level   entity.ActivityLevel `json:"level"`
	Message string               `json:"message"`
}

type FlowView struct {
	State    string    `json:"state"`
	Busy     bool      `json:"busy"`
	Progress int       `json:"progress"`
	Step     string    `json:"step"`
	Log      []LogLine `json:"log"`
}

type AuthView struct {
	PromptVisible bool   `json:"prompt_visible"`
	Status        string `json:"status,omitempty"`
	StatusLevel   string `json:"status_level,omitempty"`
	LoginEmail    string `json:"login_email,omitempty"`
	LoginBusy     bool   `json:"login_busy"`
	RegisterBusy  bool   `json:"register_busy"`
}

type FeedbackView struct {
	Toast    *Toast                 `json:"toast,omitempty"`
	Activity []entity.ActivityEntry `json:"activity"`
	Flows    map[string]FlowView    `json:"flows"`
	Auth     AuthView               `json:"auth"`
}

type flowFeedback struct {
	busy     bool
	progress int
	step     string
	log      []LogLine
}

// Feedback is the presenter: it keeps the transient UI state the flows
// report and nothing else.
type Feedback struct {
	mu       sync.Mutex
	clock    func() time.Time
	toast    *Toast
	activity []entity.ActivityEntry
	flows    map[usecase.FlowName]*flowFeedback
	auth     AuthView
}

func NewFeedback(clock func() time.Time) *Feedback {
	if clock == nil {
		clock = time.Now
	}
	return &Feedback{
		clock: clock,
		flows: make(map[usecase.FlowName]*flowFeedback),
	}
}

func (f *Feedback) Toast(level entity.ActivityLevel, message string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.toast = &Toast{Level: level, Message: message, At: f.clock()}
}

func (f *Feedback) Activity(entry entity.ActivityEntry) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.activity = append(f.activity, entry)
	if len(f.activity) > maxActivity {
		f.activity = f.activity[len(f.activity)-maxActivity:]
	}
}

func (f *Feedback) FlowLog(flow usecase.FlowName, level entity.ActivityLevel, message string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	ff := f.flow(flow)
	ff.log = append(ff.log, LogLine{At: f.clock(), Level: level, Message: message})
	if len(ff.log) > maxFlowLogSize {
		ff.log = ff.log[len(ff.log)-maxFlowLogSize:]
	}
}

func (f *Feedback) ResetFlow(flow usecase.FlowName) {
	f.mu.Lock()
	defer f.mu.Unlock()

	ff := f.flow(flow)
	ff.log = nil
	ff.progress = 0
	ff.step = ""
}

func (f *Feedback) Progress(flow usecase.FlowName, percent int, text string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	ff := f.flow(flow)
	ff.progress = percent
	ff.step = text
}

func (f *Feedback) SetBusy(flow usecase.FlowName, busy bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.flow(flow).busy = busy
}

func (f *Feedback) ShowAuthPrompt() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.auth.PromptVisible = true
}

func (f *Feedback) HideAuthPrompt() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.auth.PromptVisible = false
	f.auth.Status = ""
	f.auth.StatusLevel = ""
}

func (f *Feedback) AuthStatus(level entity.ActivityLevel, message string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.auth.Status = message
	f.auth.StatusLevel = string(level)
}

func (f *Feedback) PrefillLogin(email string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.auth.LoginEmail = email
}

// View projects the feedback. states maps flow names to their machine
// state so the console can show it next to the log.
func (f *Feedback) View(states map[usecase.FlowName]usecase.FlowState) FeedbackView {
	f.mu.Lock()
	defer f.mu.Unlock()

	v := FeedbackView{
		Activity: append([]entity.ActivityEntry(nil), f.activity...),
		Flows:    make(map[string]FlowView),
		Auth:     f.auth,
	}
	if f.toast != nil {
		t := *f.toast
		t.Visible = f.clock().Sub(t.At) < toastLifetime
		v.Toast = &t
	}

	for _, name := range []usecase.FlowName{usecase.FlowCapture, usecase.FlowCampaign} {
		ff := f.flow(name)
		v.Flows[string(name)] = FlowView{
			State:    states[name].String(),
			Busy:     ff.busy,
			Progress: ff.progress,
			Step:     ff.step,
			Log:      append([]LogLine(nil), ff.log...),
		}
	}
	v.Auth.LoginBusy = f.flow(usecase.FlowLogin).busy
	v.Auth.RegisterBusy = f.flow(usecase.FlowRegister).busy
	return v
}

func (f *Feedback) flow(name usecase.FlowName) *flowFeedback {
	ff, ok := f.flows[name]
	if !ok {
		ff = &flowFeedback{}
		f.flows[name] = ff
	}
	return ff
}

var _ usecase.Presenter = (*Feedback)(nil)
