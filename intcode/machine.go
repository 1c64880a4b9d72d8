// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package intcode

import (
	"fmt"

	"github.com/ezrec/intcode/translate"
)

// State is the execution state of a machine.
type State int

//go:generate go tool stringer -linecomment -type=State
const (
	STATE_RUNNING   = State(0) // running
	STATE_SUSPENDED = State(1) // suspended
	STATE_HALTED    = State(2) // halted
	STATE_FAILED    = State(3) // failed
)

// Machine is a resumable intcode interpreter that owns its memory.
type Machine struct {
	Verbose  bool // Set to enable verbose logging.
	Relative bool // Set to enable relative mode and OP_ARB.

	Pc     int    // Program counter.
	Base   int64  // Relative base.
	Memory Memory // Program image.

	state State
	err   error
}

// NewMachine creates a machine running a private copy of program.
func NewMachine(program Memory) (m *Machine) {
	m = &Machine{
		Memory: program.Clone(0),
	}

	return
}

// Grow zero extends memory to size words. Only legal before the first
// Execute.
func (m *Machine) Grow(size int) {
	if size > len(m.Memory) {
		m.Memory = m.Memory.Clone(size)
	}
}

// State returns the current execution state.
func (m *Machine) State() State {
	return m.state
}

// Err returns the error that failed the machine, if any.
func (m *Machine) Err() error {
	return m.err
}

// String returns the current machine state as a string.
func (m *Machine) String() string {
	return fmt.Sprintf("pc: %d, base: %d, state: %v, memory: %d words",
		m.Pc, m.Base, m.state, len(m.Memory))
}

// Execute runs until the next output, a halt, or an error. An output
// suspends the machine and returns ok, ready to resume at the following
// instruction. A halt returns !ok. Once failed, the machine keeps returning
// the same error.
func (m *Machine) Execute(tape *Tape) (output int64, ok bool, err error) {
	if m.state == STATE_FAILED {
		err = m.err
		return
	}

	defer func() {
		if err != nil {
			m.state = STATE_FAILED
			m.err = err
		}
	}()

	m.state = STATE_RUNNING

	for {
		var done bool
		output, ok, done, err = m.step(tape)
		if err != nil || done {
			return
		}
	}
}

// fetch decodes the instruction at the program counter.
func (m *Machine) fetch() (in Instruction, err error) {
	in = Instruction{
		Pc:       m.Pc,
		Base:     m.Base,
		Relative: m.Relative,
		memory:   m.Memory,
	}

	if m.Pc < 0 {
		err = ErrNegativePosition{Pc: m.Pc, Position: int64(m.Pc)}
		return
	}

	if m.Pc >= len(m.Memory) {
		err = ErrOutOfRange{Pc: m.Pc, Position: int64(m.Pc)}
		return
	}

	in.Word = m.Memory[m.Pc]
	return
}

// step executes a single instruction. done is set when Execute must return.
func (m *Machine) step(tape *Tape) (output int64, ok bool, done bool, err error) {
	in, err := m.fetch()
	if err != nil {
		return
	}

	if m.Verbose {
		translate.Log("intcode: %v: %v", itoa(int64(m.Pc)), in)
	}

	op := in.Opcode()
	next_pc := m.Pc + 1 + op.Operands()

	switch op {
	case OP_ADD, OP_MUL, OP_LT, OP_EQ:
		var a, b int64
		var dst int
		a, err = in.Parameter(0)
		if err != nil {
			return
		}
		b, err = in.Parameter(1)
		if err != nil {
			return
		}
		dst, err = in.Address(2)
		if err != nil {
			return
		}
		m.Memory[dst] = doAlu(op, a, b)
	case OP_IN:
		value, has := tape.Next()
		if !has {
			err = ErrMissingInput{Pc: m.Pc}
			return
		}
		var dst int
		dst, err = in.Address(0)
		if err != nil {
			return
		}
		m.Memory[dst] = value
	case OP_OUT:
		output, err = in.Parameter(0)
		if err != nil {
			return
		}
		m.state = STATE_SUSPENDED
		ok = true
		done = true
	case OP_JT, OP_JF:
		var cond, target int64
		cond, err = in.Parameter(0)
		if err != nil {
			return
		}
		if (cond != 0) == (op == OP_JT) {
			target, err = in.Parameter(1)
			if err != nil {
				return
			}
			next_pc, err = in.Target(target)
			if err != nil {
				return
			}
		}
	case OP_ARB:
		if !m.Relative {
			err = ErrUnknownOpcode{Pc: m.Pc, Opcode: op}
			return
		}
		var delta int64
		delta, err = in.Parameter(0)
		if err != nil {
			return
		}
		m.Base += delta
	case OP_HALT:
		m.state = STATE_HALTED
		done = true
		return
	default:
		err = ErrUnknownOpcode{Pc: m.Pc, Opcode: op}
		return
	}

	m.Pc = next_pc

	return
}

// doAlu performs the arithmetic or comparison opcode.
func doAlu(op Opcode, a, b int64) (value int64) {
	switch op {
	case OP_ADD:
		value = a + b
	case OP_MUL:
		value = a * b
	case OP_LT:
		if a < b {
			value = 1
		}
	case OP_EQ:
		if a == b {
			value = 1
		}
	}

	return
}
