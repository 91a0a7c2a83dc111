// Package cli provides the Cobra-based command line for labt.
// The root command is the timer itself; `version` is the only subcommand.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/future-gadget-lab/labt/internal/build"
	"github.com/future-gadget-lab/labt/internal/config"
	"github.com/future-gadget-lab/labt/internal/countdown"
	apperrors "github.com/future-gadget-lab/labt/internal/errors"
	"github.com/future-gadget-lab/labt/internal/lifecycle"
)

const afterHelp = "Timings may vary across worldlines."

const interruptedMessage = "Timer interrupted!"

// NewRootCmd builds the labt command. deps are passed through to lifecycle.Run.
func NewRootCmd(deps lifecycle.Deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "labt",
		Short: fmt.Sprintf("Future Gadget Lab's official timer (%s)", build.Version),
		Long: `Future Gadget Lab's official timer

Counts down the given duration once per second, then shows a desktop
notification and plays an alarm. Press Ctrl-C to abort; an aborted timer
neither notifies nor rings.

Every flag can also be set through a LABT_ environment variable, for
example LABT_DISABLE_SOUND=true or LABT_NOTIFICATION_TITLE="Tea".`,
		Example: `  # Three-minute tea timer
  labt -M 3 -t "Tea is ready"

  # Script friendly, one line per second, no side effects
  labt -S 10 -N -n -s

  # Durations need not be normalized
  labt -M 90`,
		Version:       build.VersionString(),
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTimer(cmd, deps)
		},
	}

	cmd.SetVersionTemplate("labt {{.Version}}\n")
	cmd.SetUsageTemplate(cmd.UsageTemplate() + "\n" + afterHelp + "\n")
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return apperrors.InvalidFlags(err)
	})
	AddTimerFlags(cmd)
	cmd.AddCommand(newVersionCmd())
	return cmd
}

// Execute runs labt with the process arguments and returns an exit error
// suitable for ExitCode.
func Execute(deps lifecycle.Deps) error {
	return ExecuteArgs(os.Args[1:], deps)
}

// ExecuteArgs runs labt with args. Errors are printed here, so the returned
// error only carries the exit code.
func ExecuteArgs(args []string, deps lifecycle.Deps) error {
	cmd := NewRootCmd(deps)
	cmd.SetArgs(args)
	if deps.Stdout != nil {
		cmd.SetOut(deps.Stdout)
	}
	stderr := deps.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}
	cmd.SetErr(stderr)

	err := cmd.Execute()
	if err == nil {
		return nil
	}

	var exitErr *exitError
	if errors.As(err, &exitErr) {
		return exitErr
	}

	// cobra rejected the arguments before the timer ran
	cliErr := apperrors.AsCLIError(err)
	if cliErr == nil {
		cliErr = apperrors.InvalidFlags(err)
	}
	apperrors.FprintError(stderr, cliErr)
	return NewExitError(ExitInvalidConfig)
}

// runTimer layers flags over the loaded configuration and runs one timer
func runTimer(cmd *cobra.Command, deps lifecycle.Deps) error {
	cfg, err := config.Load()
	if err != nil {
		return reportFailure(cmd.ErrOrStderr(), false, apperrors.InvalidConfig(err), ExitInvalidConfig)
	}
	ApplyTimerFlags(cmd, cfg)

	err = lifecycle.Run(cfg, deps)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, countdown.ErrInterrupted):
		if !cfg.Quiet {
			fmt.Fprintln(cmd.ErrOrStderr(), interruptedMessage)
		}
		return NewExitError(ExitInterrupted)
	default:
		return reportFailure(cmd.ErrOrStderr(), cfg.Quiet, err, ExitInvalidConfig)
	}
}

// reportFailure prints err unless quiet and returns the exit error for code
func reportFailure(w io.Writer, quiet bool, err error, code int) error {
	if !quiet {
		cliErr := apperrors.AsCLIError(err)
		if cliErr == nil {
			cliErr = apperrors.Wrap(err, apperrors.Runtime)
		}
		apperrors.FprintError(w, cliErr)
	}
	return NewExitError(code)
}
