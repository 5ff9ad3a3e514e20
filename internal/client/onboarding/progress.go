// Package onboarding tracks progress through the registration and
// password-reset wizard: the email being onboarded, whether its one-time
// code has been confirmed, the furthest step reached, and the temporary
// token issued after verification. Progress is mirrored into the
// persistence store so a restart resumes at the right step.
package onboarding

import (
	"context"
	"database/sql"
	"fmt"

	"brewdesk/internal/client/storage"
	"brewdesk/internal/common"
	"brewdesk/internal/dbx"
	"brewdesk/internal/logging"
)

// FlowType names the backend flow that produced the current progress. It is
// consumed by the screens to pick the right API calls and is not persisted.
type FlowType string

const (
	FlowRegister       FlowType = "register"
	FlowForgotPassword FlowType = "forgot-password"
)

// Wizard steps. StepReached is a high-water mark, never a cursor: it only
// moves forward until Reset.
const (
	StepRegistration = 1
	StepOTP          = 2
	StepSetPassword  = 3
)

type Progress struct {
	db    *sql.DB
	store *storage.Store
	log   logging.Logger

	email       string
	otpVerified bool
	stepReached int
	tempToken   string
	flowType    FlowType
}

// New constructs progress hydrated from the persistence store. A missing or
// undecodable step defaults to StepRegistration; a missing email to "".
// The verification flag has no persisted slot, so a hydrated step at or past
// StepSetPassword restores it, keeping step >= 3 implying verified.
func New(ctx context.Context, db *sql.DB, store *storage.Store, log logging.Logger) *Progress {
	p := &Progress{db: db, store: store, log: log, stepReached: StepRegistration}
	p.hydrate(ctx)
	return p
}

func (p *Progress) hydrate(ctx context.Context) {
	var step int
	if found, err := p.store.Get(ctx, storage.KeyRegStep, &step); err == nil && found && step >= StepRegistration {
		p.stepReached = step
	}
	if _, err := p.store.Get(ctx, storage.KeyRegEmail, &p.email); err != nil {
		p.email = ""
	}
	if _, err := p.store.Get(ctx, storage.KeyRegTempToken, &p.tempToken); err != nil {
		p.tempToken = ""
	}
	if p.stepReached >= StepSetPassword && p.email != "" {
		p.otpVerified = true
	}
	if p.stepReached > StepRegistration {
		p.log.Debug(ctx, "resuming onboarding wizard", "step", p.stepReached, "email", p.email)
	}
}

// SetRegistrationData advances the step high-water mark to nextStep and
// overwrites email/tempToken when a non-empty value is supplied. A nextStep
// below the current mark is clamped, so re-submitting an earlier wizard form
// never regresses progress. All three slots persist in one transaction.
func (p *Progress) SetRegistrationData(ctx context.Context, nextStep int, email, tempToken string) error {
	if nextStep > p.stepReached {
		p.stepReached = nextStep
	}
	if email != "" {
		p.email = email
	}
	if tempToken != "" {
		p.tempToken = tempToken
	}

	err := dbx.WithTx(ctx, p.db, func(ctx context.Context, tx dbx.DBTX) error {
		ts := p.store.WithTx(tx)
		if err := ts.Set(ctx, storage.KeyRegStep, p.stepReached); err != nil {
			return err
		}
		if err := ts.Set(ctx, storage.KeyRegEmail, p.email); err != nil {
			return err
		}
		return ts.Set(ctx, storage.KeyRegTempToken, p.tempToken)
	})
	if err != nil {
		return fmt.Errorf("persisting registration data: %w", err)
	}
	return nil
}

// MarkVerified records a confirmed one-time code. An empty email means the
// wizard never started, so there is nothing the code could have been tied
// to; that is an invalid state, not a user error.
func (p *Progress) MarkVerified(ctx context.Context) error {
	if p.email == "" {
		return fmt.Errorf("mark verified without email: %w", common.ErrInvalidState)
	}
	p.otpVerified = true
	return nil
}

// StartFlow records which backend flow is producing the progress and clears
// a verification left over from a previous attempt.
func (p *Progress) StartFlow(ft FlowType) {
	p.flowType = ft
	p.otpVerified = false
}

// Reset returns the wizard to its initial state and deletes the persisted
// slots atomically. Called on completion and on abandonment alike.
func (p *Progress) Reset(ctx context.Context) error {
	p.email = ""
	p.otpVerified = false
	p.stepReached = StepRegistration
	p.tempToken = ""
	p.flowType = ""

	err := dbx.WithTx(ctx, p.db, func(ctx context.Context, tx dbx.DBTX) error {
		ts := p.store.WithTx(tx)
		for _, key := range []string{storage.KeyRegStep, storage.KeyRegEmail, storage.KeyRegTempToken} {
			if err := ts.Remove(ctx, key); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("resetting onboarding progress: %w", err)
	}
	return nil
}

func (p *Progress) Email() string     { return p.email }
func (p *Progress) OTPVerified() bool { return p.otpVerified }
func (p *Progress) StepReached() int  { return p.stepReached }
func (p *Progress) TempToken() string { return p.tempToken }
func (p *Progress) Flow() FlowType    { return p.flowType }
