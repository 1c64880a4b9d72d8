// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package amplifier

import (
	"strconv"

	"github.com/ezrec/intcode/intcode"
	"github.com/ezrec/intcode/translate"
)

// Mode selects how a network is evaluated.
type Mode int

//go:generate go tool stringer -linecomment -type=Mode
const (
	SERIAL   = Mode(0) // serial
	FEEDBACK = Mode(1) // feedback
)

// Network is an ordered chain of amplifiers. A network is single use: its
// machines are consumed by evaluation.
type Network struct {
	Verbose    bool // If set, enables verbose logging.
	Amplifiers []*Amplifier
}

// NewNetwork creates one fresh amplifier per phase, all running program
// with the settings of runner.
func NewNetwork(runner *intcode.Runner, program intcode.Memory, phases []int64) (net *Network) {
	net = &Network{}
	if runner != nil {
		net.Verbose = runner.Verbose
	}
	for _, phase := range phases {
		net.Amplifiers = append(net.Amplifiers, NewAmplifier(runner, program, phase))
	}

	return
}

// Evaluate the network in the given mode.
func (net *Network) Evaluate(mode Mode, input int64) (output int64, err error) {
	switch mode {
	case FEEDBACK:
		return net.Feedback(input)
	default:
		return net.Serial(input)
	}
}

// Serial passes input through every amplifier once, in order.
func (net *Network) Serial(input int64) (output int64, err error) {
	output = input
	for n, amp := range net.Amplifiers {
		output, err = amp.Amplify(output)
		if err != nil {
			return
		}
		if net.Verbose {
			translate.Log("amplifier: %v: phase %v output %v",
				strconv.Itoa(n), strconv.FormatInt(amp.Phase, 10), strconv.FormatInt(output, 10))
		}
	}

	return
}

// Feedback runs a serial pass, then keeps cycling the latest output through
// the amplifiers in round-robin order starting at the first. When an
// amplifier halts, the value that would have been fed to it is the result.
func (net *Network) Feedback(input int64) (output int64, err error) {
	output, err = net.Serial(input)
	if err != nil {
		return
	}

	if len(net.Amplifiers) == 0 {
		return
	}

	for n := 0; ; n = (n + 1) % len(net.Amplifiers) {
		var next int64
		var ok bool
		next, ok, err = net.Amplifiers[n].Reamplify(output)
		if err != nil {
			return
		}
		if !ok {
			if net.Verbose {
				translate.Log("amplifier: %v: halted", strconv.Itoa(n))
			}
			return
		}
		output = next
	}
}
