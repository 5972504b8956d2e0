package cli

import (
	"context"
	"errors"

	"github.com/fatih/color"

	"github.com/example/casebook/internal/core/session"
	"github.com/example/casebook/internal/core/submission"
)

// Session is the state machine the adapters drive.
// app.Controller satisfies it.
type Session interface {
	Dispatch(ctx context.Context, msgs ...session.Msg) session.State
	State() session.State
}

// ErrNotAdmin is returned by admin operations attempted outside admin mode.
var ErrNotAdmin = errors.New("admin login required")

func requireAdmin(s Session) error {
	if !s.State().IsAdmin {
		return ErrNotAdmin
	}
	return nil
}

func statusLabel(s submission.Status) string {
	switch s {
	case submission.StatusPending:
		return color.New(color.FgYellow).Sprint("PENDING")
	case submission.StatusApproved:
		return color.New(color.FgHiGreen).Sprint("APPROVED")
	default:
		return string(s)
	}
}

func checkMark() string {
	return color.New(color.FgGreen).Sprint("✓")
}
