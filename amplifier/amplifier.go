// Package amplifier chains intcode machines into serial and feedback
// pipelines.
//
// Each Amplifier owns a machine seeded with a phase value, consumed as its
// first input. A Network feeds each amplifier's output to the next one.
// In feedback mode the last output wraps around to the first amplifier,
// and the amplifiers take turns in strict round-robin order until one of
// them halts. Scheduling is cooperative: every turn runs one machine up to
// its next output.
package amplifier

import (
	"github.com/ezrec/intcode/intcode"
)

// Amplifier is a machine with a fixed phase setting.
type Amplifier struct {
	Machine *intcode.Machine // Owned machine.
	Phase   int64            // Phase setting, consumed by the first Amplify.
}

// NewAmplifier creates an amplifier running a private copy of program,
// configured by runner. A nil runner uses the machine defaults.
func NewAmplifier(runner *intcode.Runner, program intcode.Memory, phase int64) (amp *Amplifier) {
	amp = &Amplifier{
		Machine: runner.NewMachine(program),
		Phase:   phase,
	}

	return
}

// Amplify runs the machine with the phase followed by input, and returns
// the output produced. A machine that halts instead is ErrUnknown.
func (amp *Amplifier) Amplify(input int64) (output int64, err error) {
	output, ok, err := amp.Machine.Execute(intcode.NewTape(amp.Phase, input))
	if err != nil {
		return
	}
	if !ok {
		err = intcode.ErrUnknown
		return
	}

	return
}

// Reamplify resumes the machine with input, after the phase has been
// consumed. It returns !ok once the machine halts.
func (amp *Amplifier) Reamplify(input int64) (output int64, ok bool, err error) {
	return amp.Machine.Execute(intcode.NewTape(input))
}
