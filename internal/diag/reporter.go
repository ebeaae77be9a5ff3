// SPDX-License-Identifier: Apache-2.0

package diag

import "sync"

// Reporter accumulates diagnostics raised while lexing: callers keep
// scanning after a non-fatal report, and the final accumulated set is
// inspected once lexing finishes.
type Reporter interface {
	// Report adds e to the accumulated set. It returns e back to the caller
	// when e is fatal, or nil when the caller may continue as if nothing
	// happened.
	Report(e Exception) Exception
	// Reported returns every Exception reported so far, in report order.
	Reported() []Exception
	// HasErrors reports whether any fatal Exception has been reported.
	HasErrors() bool
}

// NewReporter returns a concurrency-safe Reporter. deprecationsAsErrors
// controls whether SeverityDeprecation exceptions count toward HasErrors and
// are returned from Report instead of being swallowed.
func NewReporter(deprecationsAsErrors bool) Reporter {
	return &reporterLock{
		inner:                &reporter{},
		deprecationsAsErrors: deprecationsAsErrors,
	}
}

type reporter struct {
	reported []Exception
	errors   bool
}

func (r *reporter) report(e Exception, deprecationsAsErrors bool) Exception {
	r.reported = append(r.reported, e)
	fatal := e.Severity() == SeverityLexical || deprecationsAsErrors
	if !fatal {
		return nil
	}
	r.errors = true
	return e
}

type reporterLock struct {
	mu                   sync.Mutex
	inner                *reporter
	deprecationsAsErrors bool
}

func (r *reporterLock) Report(e Exception) Exception {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.inner.report(e, r.deprecationsAsErrors)
}

func (r *reporterLock) Reported() []Exception {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Exception, len(r.inner.reported))
	copy(out, r.inner.reported)
	return out
}

func (r *reporterLock) HasErrors() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.inner.errors
}
