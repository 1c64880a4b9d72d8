package intcode

import (
	"github.com/ezrec/intcode/translate"
)

// Runner runs programs to completion, collecting their outputs.
type Runner struct {
	Verbose  bool // If set, enables verbose logging.
	Relative bool // If set, enables relative mode and OP_ARB.
	Size     int  // Minimum memory size, zero extending the program.
}

// Run executes memory with no input. See Runner.RunWithInput.
func Run(memory Memory) (outputs []int64, err error) {
	return (&Runner{}).Run(memory)
}

// RunWithInput executes memory reading from inputs. See Runner.RunWithInput.
func RunWithInput(memory Memory, inputs []int64) (outputs []int64, err error) {
	return (&Runner{}).RunWithInput(memory, inputs)
}

// NewMachine creates a machine running a private copy of program, with the
// runner's settings applied. A nil runner uses the defaults.
func (r *Runner) NewMachine(program Memory) (m *Machine) {
	m = NewMachine(program)
	if r == nil {
		return
	}

	m.Verbose = r.Verbose
	m.Relative = r.Relative
	m.Grow(r.Size)

	return
}

// Run executes memory with no input.
func (r *Runner) Run(memory Memory) (outputs []int64, err error) {
	return r.RunWithInput(memory, nil)
}

// RunWithInput executes memory until it halts, reading from inputs and
// collecting every output. On halt, the final memory is copied back into
// memory. On error, only the error is returned and memory is untouched.
func (r *Runner) RunWithInput(memory Memory, inputs []int64) (outputs []int64, err error) {
	m := r.NewMachine(memory)
	tape := NewTape(inputs...)

	for {
		var output int64
		var ok bool
		output, ok, err = m.Execute(tape)
		if err != nil {
			outputs = nil
			return
		}
		if !ok {
			break
		}
		if r.Verbose {
			translate.Log("intcode: output %v", itoa(output))
		}
		outputs = append(outputs, output)
	}

	copy(memory, m.Memory)

	return
}
