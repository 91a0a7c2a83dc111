package cli_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/future-gadget-lab/labt/internal/cli"
	"github.com/future-gadget-lab/labt/internal/interrupt"
	"github.com/future-gadget-lab/labt/internal/lifecycle"
	"github.com/future-gadget-lab/labt/internal/notify"
	"github.com/future-gadget-lab/labt/internal/testutil"
)

type fixture struct {
	stdout bytes.Buffer
	stderr bytes.Buffer
	clock  *testutil.FakeClock
	flag   *interrupt.Flag
	sender *testutil.MockSender
	player *testutil.MockPlayer
}

func newFixture() *fixture {
	return &fixture{
		clock:  testutil.NewFakeClock(),
		flag:   interrupt.NewFlag(),
		sender: testutil.NewMockSender(),
		player: &testutil.MockPlayer{},
	}
}

func (f *fixture) run(args ...string) error {
	return cli.ExecuteArgs(args, lifecycle.Deps{
		Stdout: &f.stdout,
		Stderr: &f.stderr,
		Clock:  f.clock,
		Flag:   f.flag,
		InstallHandler: func(*interrupt.Flag) (func(), error) {
			return func() {}, nil
		},
		OpenAlarm: func() (notify.AlarmPlayer, error) { return f.player, nil },
		NewSender: func(notify.AlarmPlayer) notify.Sender { return f.sender },
	})
}

func TestExecute_ThreeSeconds(t *testing.T) {
	f := newFixture()

	err := f.run("-S", "3")
	require.NoError(t, err)
	assert.Equal(t, cli.ExitSuccess, cli.ExitCode(err))

	assert.Equal(t,
		"Time remaining: 00:00:03\n"+
			"Time remaining: 00:00:02\n"+
			"Time remaining: 00:00:01\n"+
			"Time remaining: 00:00:00\n",
		f.stdout.String())
	assert.Empty(t, f.stderr.String())
	assert.Equal(t, "Timer Finished!", f.sender.LastNotification.Title)
	assert.Equal(t, "The timer for 0h 0m 3s (3 seconds) is complete.", f.sender.LastNotification.Message)
	assert.Equal(t, []string{"visual", "sound"}, f.sender.Order())
}

func TestExecute_ZeroDuration(t *testing.T) {
	tests := map[string]struct {
		args       []string
		wantStderr bool
	}{
		"no flags":       {args: nil, wantStderr: true},
		"explicit zeros": {args: []string{"-H", "0", "-M", "0", "-S", "0"}, wantStderr: true},
		"quiet zero":     {args: []string{"-q"}},
		"long flags":     {args: []string{"--hours", "0", "--seconds", "0"}, wantStderr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			f := newFixture()

			err := f.run(tt.args...)
			assert.Equal(t, cli.ExitInvalidConfig, cli.ExitCode(err))
			assert.Empty(t, f.stdout.String())
			assert.Zero(t, f.clock.Ticks())
			assert.Empty(t, f.sender.Order())

			if tt.wantStderr {
				assert.Contains(t, f.stderr.String(), "Total duration must be greater than 0 seconds.")
				assert.Contains(t, f.stderr.String(), "-H/--hours, -M/--minutes and/or -S/--seconds")
			} else {
				assert.Empty(t, f.stderr.String())
			}
		})
	}
}

func TestExecute_InvalidArguments(t *testing.T) {
	tests := map[string]struct {
		args []string
	}{
		"negative seconds": {args: []string{"-S", "-1"}},
		"not a number":     {args: []string{"--minutes", "ten"}},
		"unknown flag":     {args: []string{"--loop"}},
		"positional":       {args: []string{"5m"}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			f := newFixture()

			err := f.run(tt.args...)
			assert.Equal(t, cli.ExitInvalidConfig, cli.ExitCode(err))
			assert.NotEmpty(t, f.stderr.String())
			assert.Zero(t, f.clock.Ticks())
		})
	}
}

func TestExecute_Interrupted(t *testing.T) {
	tests := map[string]struct {
		args       []string
		wantStderr string
	}{
		"reports interruption": {args: []string{"-S", "5"}, wantStderr: "Timer interrupted!\n"},
		"quiet":                {args: []string{"-S", "5", "-q"}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			f := newFixture()
			f.clock.At(2, f.flag.Set)

			err := f.run(tt.args...)
			assert.Equal(t, cli.ExitInterrupted, cli.ExitCode(err))
			assert.Equal(t, tt.wantStderr, f.stderr.String())
			assert.Empty(t, f.sender.Order())
			assert.Zero(t, f.player.PlayCount())
		})
	}
}

func TestExecute_SideEffectFlags(t *testing.T) {
	tests := map[string]struct {
		args      []string
		wantOrder []string
	}{
		"both":               {args: []string{"-S", "10"}, wantOrder: []string{"visual", "sound"}},
		"no notification":    {args: []string{"-S", "10", "-n"}, wantOrder: []string{"sound"}},
		"no sound":           {args: []string{"-S", "10", "-s"}, wantOrder: []string{"visual"}},
		"neither":            {args: []string{"-S", "10", "-n", "-s"}},
		"combined shorthand": {args: []string{"-S", "10", "-ns"}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			f := newFixture()

			require.NoError(t, f.run(tt.args...))
			assert.Equal(t, 10, f.clock.Ticks())
			if tt.wantOrder == nil {
				assert.Empty(t, f.sender.Order())
			} else {
				assert.Equal(t, tt.wantOrder, f.sender.Order())
			}
		})
	}
}

func TestExecute_Quiet(t *testing.T) {
	f := newFixture()
	f.sender.WithVisualError(testutil.ErrMockVisual).WithSoundError(testutil.ErrMockSound)

	require.NoError(t, f.run("-S", "2", "-q"))
	assert.Empty(t, f.stdout.String())
	assert.Empty(t, f.stderr.String())
	assert.Equal(t, 2, f.clock.Ticks())
}

func TestExecute_EnvironmentLayering(t *testing.T) {
	t.Setenv("LABT_SECONDS", "2")
	t.Setenv("LABT_NOTIFICATION_TITLE", "From env")
	t.Setenv("LABT_DISABLE_SOUND", "true")

	t.Run("environment applies", func(t *testing.T) {
		f := newFixture()
		require.NoError(t, f.run())
		assert.Equal(t, 2, f.clock.Ticks())
		assert.Equal(t, "From env", f.sender.LastNotification.Title)
		assert.Equal(t, []string{"visual"}, f.sender.Order())
	})

	t.Run("flags win", func(t *testing.T) {
		f := newFixture()
		require.NoError(t, f.run("-S", "1", "-t", "From flag", "--disable-sound=false"))
		assert.Equal(t, 1, f.clock.Ticks())
		assert.Equal(t, "From flag", f.sender.LastNotification.Title)
		assert.Equal(t, []string{"visual", "sound"}, f.sender.Order())
	})
}

func TestExecute_CustomBody(t *testing.T) {
	f := newFixture()

	require.NoError(t, f.run("-M", "0", "-S", "1", "-b", "El Psy Kongroo"))
	assert.Equal(t, "El Psy Kongroo", f.sender.LastNotification.Message)
}

func TestExecute_EmptyTitle(t *testing.T) {
	f := newFixture()

	err := f.run("-S", "1", "-t", "")
	require.NoError(t, err)
	assert.Equal(t, cli.ExitSuccess, cli.ExitCode(err))
	assert.Empty(t, f.stderr.String())
	assert.Equal(t, 1, f.sender.VisualCallCount())
	assert.Empty(t, f.sender.LastNotification.Title)
}

func TestExecute_Help(t *testing.T) {
	f := newFixture()

	require.NoError(t, f.run("--help"))
	out := f.stdout.String()
	assert.Contains(t, out, "Timings may vary across worldlines.")
	for _, flag := range []string{"--hours", "--minutes", "--seconds", "--notification-title",
		"--notification-body", "--disable-notifications", "--disable-sound", "--quiet",
		"--non-interactive", "--simple"} {
		assert.Contains(t, out, flag)
	}
	assert.Zero(t, f.clock.Ticks())
}

func TestExecute_Version(t *testing.T) {
	tests := map[string]struct {
		args []string
		want string
	}{
		"flag":          {args: []string{"--version"}, want: "labt dev (commit: unknown)\n"},
		"plain command": {args: []string{"version", "--plain"}, want: "labt version dev\n"},
		"pretty":        {args: []string{"version"}, want: "Version"},
		"dev build":     {args: []string{"version"}, want: "development build"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			f := newFixture()

			require.NoError(t, f.run(tt.args...))
			assert.Contains(t, f.stdout.String(), tt.want)
			assert.Zero(t, f.clock.Ticks())
		})
	}
}
