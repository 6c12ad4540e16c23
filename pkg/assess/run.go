package assess

import (
	"context"
	"io"

	"github.com/testgate/core/pkg/depend"
	"github.com/testgate/core/pkg/runner"
)

// RunQuiet executes a nested test session with its output suppressed and
// returns the run's exit status. build registers the suite, typically the
// student's tests wired against an injected mutant.
func RunQuiet(ctx context.Context, cfg depend.Config, build func(*runner.Session)) runner.ExitCode {
	session := runner.NewSession(cfg, runner.WithOutput(io.Discard))
	build(session)

	result, err := session.Run(ctx)
	if err != nil {
		// interrupted or internal; the result carries the matching status
		return result.ExitCode()
	}
	return result.ExitCode()
}
