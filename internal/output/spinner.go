package output

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh/spinner"
)

// SpinnerOption configures a spinner.
type SpinnerOption func(*spinnerConfig)

type spinnerConfig struct {
	title string
}

// WithTitle sets the spinner title.
func WithTitle(title string) SpinnerOption {
	return func(c *spinnerConfig) {
		c.title = title
	}
}

// RunWithSpinner executes action while showing a spinner on a terminal.
// Without a TTY the action runs directly.
func RunWithSpinner(ctx context.Context, action func(ctx context.Context) error, opts ...SpinnerOption) error {
	cfg := &spinnerConfig{title: "Working..."}
	for _, opt := range opts {
		opt(cfg)
	}

	actionCtx := ctx
	if !IsTTY() {
		return action(actionCtx)
	}

	var actionErr error
	spinnerErr := spinner.New().
		Title(cfg.title).
		Context(actionCtx).
		Action(func() {
			actionErr = action(actionCtx)
		}).
		Run()

	if actionErr != nil {
		return actionErr
	}
	if spinnerErr != nil {
		return fmt.Errorf("spinner error: %w", spinnerErr)
	}
	return actionCtx.Err()
}
