// Package dispatch resolves the selector's output against the cache and
// launches the right target: a direct executable in the foreground, a
// desktop shortcut via a detached helper, or freeform typed input split
// into a command line.
package dispatch

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/dtomvan/dmenu-drun/pkg/cache"
	"github.com/dtomvan/dmenu-drun/pkg/logging"
	"github.com/dtomvan/dmenu-drun/pkg/utils"
	"github.com/rs/zerolog"
)

// HelperCommand starts desktop shortcuts. It forks its own child and
// returns immediately, which is why the desktop branch is detached.
const HelperCommand = "gtk-launch"

// StatusUnknown marks a launch whose exit status cannot be observed,
// such as the detached desktop branch.
const StatusUnknown = -1

// ErrEmptyChoice is returned when the selector produced no tokens to
// execute. It is a fatal input error.
var ErrEmptyChoice = errors.New("got empty selection")

// Runner executes resolved targets. The default runner spawns real
// processes; tests substitute a recording one.
type Runner interface {
	// Run spawns a foreground process inheriting the standard streams,
	// waits for it, and returns its exit status.
	Run(name string, args ...string) (int, error)

	// Detach spawns a process in its own session and does not wait.
	Detach(name string, args ...string) error
}

// Dispatcher resolves choices against a read-only cache.
type Dispatcher struct {
	cache  cache.Cache
	runner Runner
	logger zerolog.Logger
}

// New returns a Dispatcher launching real processes.
func New(c cache.Cache) *Dispatcher {
	return NewWithRunner(c, execRunner{})
}

// NewWithRunner returns a Dispatcher using a custom Runner.
func NewWithRunner(c cache.Cache, r Runner) *Dispatcher {
	return &Dispatcher{
		cache:  c,
		runner: r,
		logger: logging.GetLogger("dispatch"),
	}
}

// Dispatch launches the target the cleaned selector output resolves to
// and returns its exit status, or StatusUnknown when the launch was
// detached. Failure to spawn the target is fatal and returned as an
// error.
func (d *Dispatcher) Dispatch(choice string) (int, error) {
	target, ok := d.cache[choice]
	if !ok {
		return d.freeform(choice)
	}

	if choice == target {
		// Direct entry: an executable resolvable via $PATH, run in the
		// foreground with no arguments.
		d.logger.Debug().Str("target", target).Msg("direct launch")
		return d.runner.Run(target)
	}

	// Desktop entry: the helper forks a child of its own and returns,
	// so it must run in a detached session or its children die with us.
	d.logger.Debug().Str("target", target).Msg("detached desktop launch")
	if err := d.runner.Detach(HelperCommand, target); err != nil {
		return StatusUnknown, fmt.Errorf("could not start %s %s: %w", HelperCommand, target, err)
	}
	return StatusUnknown, nil
}

// freeform treats the choice as a typed command line: the first token
// is the program, the rest are its arguments.
func (d *Dispatcher) freeform(choice string) (int, error) {
	tokens := strings.Fields(choice)
	if len(tokens) == 0 {
		return StatusUnknown, ErrEmptyChoice
	}

	d.logger.Debug().Strs("tokens", tokens).Msg("freeform launch")
	return d.runner.Run(tokens[0], tokens[1:]...)
}

// execRunner is the production Runner.
type execRunner struct{}

func (execRunner) Run(name string, args ...string) (int, error) {
	cmd := exec.Command(name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Start(); err != nil {
		return StatusUnknown, fmt.Errorf("could not start %s: %w", name, err)
	}

	if err := cmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), nil
		}
		return StatusUnknown, fmt.Errorf("wait for %s: %w", name, err)
	}
	return cmd.ProcessState.ExitCode(), nil
}

func (execRunner) Detach(name string, args ...string) error {
	return utils.StartDetachedProcess(name, args...)
}
