package amplifier

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/ezrec/intcode/internal"
	"github.com/ezrec/intcode/intcode"
)

// Trial is the result of evaluating one phase permutation.
type Trial struct {
	Phases []int64
	Output int64
}

// Search evaluates a fresh network for every permutation of phases and
// returns the trial with the largest output. Ties go to the permutation
// enumerated first. Trials share no state and are evaluated concurrently,
// each machine configured by runner.
func Search(ctx context.Context, runner *intcode.Runner, program intcode.Memory, phases []int64, mode Mode) (best Trial, err error) {
	var trials []Trial
	for perm := range internal.Permutations(phases) {
		trials = append(trials, Trial{Phases: perm})
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for n := range trials {
		g.Go(func() (err error) {
			err = ctx.Err()
			if err != nil {
				return
			}

			net := NewNetwork(runner, program, trials[n].Phases)
			trials[n].Output, err = net.Evaluate(mode, 0)
			return
		})
	}

	err = g.Wait()
	if err != nil {
		return
	}

	for n, trial := range trials {
		if n == 0 || trial.Output > best.Output {
			best = trial
		}
	}

	return
}
