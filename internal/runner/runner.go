// Package runner drives the probe checks in a fixed sequential order:
// service-health (when enabled), user-verification, note-contract,
// reminder-contract. One network call at a time, no retries; the first
// fatal error aborts the run.
package runner

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"

	notecontract "braindump-probe/internal/checks/note-contract"
	remindercontract "braindump-probe/internal/checks/reminder-contract"
	servicehealth "braindump-probe/internal/checks/service-health"
	userverification "braindump-probe/internal/checks/user-verification"
	"braindump-probe/internal/common/config"
	"braindump-probe/internal/common/logger"
	"braindump-probe/internal/common/validation"
)

// CheckReport is the outcome of one check, kept even when the check failed
// so the report can show the failing assertion.
type CheckReport struct {
	Name   string
	Result *validation.Result
	Hints  []string
	Err    error
}

// Report is the aggregate outcome of a probe run.
type Report struct {
	RunID           string
	Checks          []CheckReport
	ShortCircuited  bool
	RegistrationURL string
}

// Failed reports whether any check ended in a fatal error.
func (rep *Report) Failed() bool {
	for _, c := range rep.Checks {
		if c.Err != nil {
			return true
		}
	}
	return false
}

type Runner struct {
	cfg    *config.Config
	logger logger.Logger
	out    io.Writer
}

func New(cfg *config.Config, log logger.Logger, out io.Writer) *Runner {
	return &Runner{
		cfg:    cfg,
		logger: log.WithFields(map[string]interface{}{"component": "runner"}),
		out:    out,
	}
}

func (r *Runner) newReport() *Report {
	return &Report{RunID: uuid.NewString()}
}

// Run executes the full check sequence. An unregistered user short-circuits
// the run without error; the registration link is reported instead.
func (r *Runner) Run(ctx context.Context) (*Report, error) {
	rep := r.newReport()
	r.printHeader(rep)

	if r.cfg.Probe.CheckHealth {
		if err := r.runHealth(ctx, rep); err != nil {
			r.printSummary(rep)
			return rep, err
		}
	}

	registered, err := r.runVerify(ctx, rep)
	if err != nil {
		r.printSummary(rep)
		return rep, err
	}
	if !registered {
		rep.ShortCircuited = true
		r.printRegistration(rep.RegistrationURL)
		r.printSummary(rep)
		return rep, nil
	}

	if err := r.runNote(ctx, rep); err != nil {
		r.printSummary(rep)
		return rep, err
	}

	if err := r.runReminder(ctx, rep); err != nil {
		r.printSummary(rep)
		return rep, err
	}

	r.printSummary(rep)
	return rep, nil
}

// RunHealth executes only the service-health check.
func (r *Runner) RunHealth(ctx context.Context) (*Report, error) {
	rep := r.newReport()
	r.printHeader(rep)
	err := r.runHealth(ctx, rep)
	r.printSummary(rep)
	return rep, err
}

// RunVerify executes only the user-verification check.
func (r *Runner) RunVerify(ctx context.Context) (*Report, error) {
	rep := r.newReport()
	r.printHeader(rep)
	registered, err := r.runVerify(ctx, rep)
	if err == nil && !registered {
		rep.ShortCircuited = true
		r.printRegistration(rep.RegistrationURL)
	}
	r.printSummary(rep)
	return rep, err
}

// RunNote executes only the note-contract check.
func (r *Runner) RunNote(ctx context.Context) (*Report, error) {
	rep := r.newReport()
	r.printHeader(rep)
	err := r.runNote(ctx, rep)
	r.printSummary(rep)
	return rep, err
}

// RunReminder executes only the reminder-contract check.
func (r *Runner) RunReminder(ctx context.Context) (*Report, error) {
	rep := r.newReport()
	r.printHeader(rep)
	err := r.runReminder(ctx, rep)
	r.printSummary(rep)
	return rep, err
}

func (r *Runner) runHealth(ctx context.Context, rep *Report) error {
	h := servicehealth.NewHandler(&servicehealth.Config{
		BaseURL: r.cfg.Service.BaseURL,
		Timeout: r.cfg.Service.GetTimeout(),
	}, r.logger)

	out, err := h.Execute(ctx)
	cr := CheckReport{Name: servicehealth.CheckName, Err: err}
	if out != nil {
		cr.Result = out.Result
	}
	rep.Checks = append(rep.Checks, cr)
	r.printCheck(cr)
	return err
}

func (r *Runner) runVerify(ctx context.Context, rep *Report) (bool, error) {
	h := userverification.NewHandler(&userverification.Config{
		BaseURL: r.cfg.Service.BaseURL,
		UserID:  r.cfg.Probe.UserID,
		Timeout: r.cfg.Service.GetTimeout(),
	}, r.logger)

	out, err := h.Execute(ctx)
	cr := CheckReport{Name: userverification.CheckName, Err: err}
	registered := false
	if out != nil {
		cr.Result = out.Result
		registered = out.Registered
		rep.RegistrationURL = out.RegistrationURL
	}
	rep.Checks = append(rep.Checks, cr)
	r.printCheck(cr)
	return registered, err
}

func (r *Runner) runNote(ctx context.Context, rep *Report) error {
	h := notecontract.NewHandler(&notecontract.Config{
		BaseURL: r.cfg.Service.BaseURL,
		UserID:  r.cfg.Probe.UserID,
		Text:    r.cfg.Probe.NoteText,
		Timeout: r.cfg.Service.GetTimeout(),
	}, r.logger)

	out, err := h.Execute(ctx)
	cr := CheckReport{Name: notecontract.CheckName, Err: err}
	if out != nil {
		cr.Result = out.Result
		if out.Mismatch {
			cr.Hints = append(cr.Hints, out.Hint)
		}
	}
	rep.Checks = append(rep.Checks, cr)
	r.printCheck(cr)
	return err
}

func (r *Runner) runReminder(ctx context.Context, rep *Report) error {
	h := remindercontract.NewHandler(&remindercontract.Config{
		BaseURL:         r.cfg.Service.BaseURL,
		UserID:          r.cfg.Probe.UserID,
		TextWithTime:    r.cfg.Probe.ReminderTextWithTime,
		TextWithoutTime: r.cfg.Probe.ReminderTextWithoutTime,
		Timeout:         r.cfg.Service.GetTimeout(),
	}, r.logger)

	out, err := h.Execute(ctx)
	errAttached := false
	for _, scenario := range []*remindercontract.ScenarioOutput{out.Clarification, out.Scheduled} {
		if scenario == nil {
			continue
		}
		cr := CheckReport{
			Name:   fmt.Sprintf("%s (%s)", remindercontract.CheckName, scenario.Scenario),
			Result: scenario.Result,
		}
		if scenario.Mismatch {
			cr.Hints = append(cr.Hints, scenario.Hint)
		}
		if err != nil && scenario.Result != nil && !scenario.Result.Valid() {
			cr.Err = err
			errAttached = true
		}
		rep.Checks = append(rep.Checks, cr)
		r.printCheck(cr)
	}
	if err != nil && !errAttached {
		// Transport or format failure before any response was validated.
		cr := CheckReport{Name: remindercontract.CheckName, Err: err}
		rep.Checks = append(rep.Checks, cr)
		r.printCheck(cr)
	}
	return err
}
