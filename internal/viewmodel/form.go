// Package viewmodel holds the per-page state of the app: the generation
// forms, the calendar, the dashboard. Each view model carries its own mutex
// as the stand-in for the browser's single event thread; it is released
// during network calls (the only suspension points) and re-acquired to apply
// results.
package viewmodel

import (
	"context"
	"log/slog"
	"math"
	"sync"

	"github.com/photoflow/photoflow/internal/notify"
)

// Form is the fetch/loading/result triangle every generation page repeats:
// a parameter set, a loading flag, and a result that is fully replaced on
// success. One instance per form; different forms never coordinate.
type Form[P, R any] struct {
	mu     sync.Mutex
	params P

	validate func(P) error
	run      func(context.Context, P) (R, error)

	notifier   *notify.Center
	failMsg    string
	successMsg func(R) string

	loading   bool
	result    R
	hasResult bool
}

// FormConfig parameterizes one concrete form.
type FormConfig[P, R any] struct {
	Initial  P
	Validate func(P) error
	Run      func(context.Context, P) (R, error)
	// FailMsg is the generic notification for any network/API failure.
	FailMsg string
	// SuccessMsg, when set, builds the success notification from the result.
	SuccessMsg func(R) string
}

func NewForm[P, R any](n *notify.Center, cfg FormConfig[P, R]) *Form[P, R] {
	return &Form[P, R]{
		params:     cfg.Initial,
		validate:   cfg.Validate,
		run:        cfg.Run,
		notifier:   n,
		failMsg:    cfg.FailMsg,
		successMsg: cfg.SuccessMsg,
	}
}

// Update mutates the parameter set. No-op while a request is in flight is not
// required; parameter edits during flight only affect the next Generate.
func (f *Form[P, R]) Update(fn func(*P)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	fn(&f.params)
}

func (f *Form[P, R]) Params() P {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.params
}

func (f *Form[P, R]) Loading() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.loading
}

// Result returns the current result and whether one exists.
func (f *Form[P, R]) Result() (R, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.result, f.hasResult
}

// Generate validates the parameters and calls the generation endpoint.
// Validation failure raises a notification and issues no network call. While
// a request is in flight further calls are no-ops (the disabled trigger
// control). On success the result replaces any prior one; on failure the
// loading flag reverts and the prior result stays.
func (f *Form[P, R]) Generate(ctx context.Context) {
	f.mu.Lock()
	if f.loading {
		f.mu.Unlock()
		return
	}
	params := f.params
	if f.validate != nil {
		if err := f.validate(params); err != nil {
			f.mu.Unlock()
			f.notifier.Error(err.Error())
			return
		}
	}
	f.loading = true
	f.mu.Unlock()

	result, err := f.run(ctx, params)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.loading = false
	if err != nil {
		slog.Info(err.Error())
		f.notifier.Error(f.failMsg)
		return
	}
	f.result = result
	f.hasResult = true
	if f.successMsg != nil {
		f.notifier.Success(f.successMsg(result))
	}
}

// Reset clears the result and restores the given parameters.
func (f *Form[P, R]) Reset(params P) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var zero R
	f.params = params
	f.result = zero
	f.hasResult = false
}

// ClampCount maps a continuous slider value onto the integer range [1,10]
// the count parameters accept.
func ClampCount(v float64) int {
	n := int(math.Round(v))
	if n < 1 {
		return 1
	}
	if n > 10 {
		return 10
	}
	return n
}
