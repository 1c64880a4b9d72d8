package intcode

import (
	"fmt"
	"strings"
)

// Opcode is the operation selector, the low two decimal digits of a word.
type Opcode int64

//go:generate go tool stringer -linecomment -type=Opcode
const (
	OP_ADD  = Opcode(1)  // add
	OP_MUL  = Opcode(2)  // mul
	OP_IN   = Opcode(3)  // in
	OP_OUT  = Opcode(4)  // out
	OP_JT   = Opcode(5)  // jt
	OP_JF   = Opcode(6)  // jf
	OP_LT   = Opcode(7)  // lt
	OP_EQ   = Opcode(8)  // eq
	OP_ARB  = Opcode(9)  // arb
	OP_HALT = Opcode(99) // halt
)

// Operands returns the operand count of the opcode, or -1 if the opcode
// is not known.
func (op Opcode) Operands() int {
	switch op {
	case OP_ADD, OP_MUL, OP_LT, OP_EQ:
		return 3
	case OP_JT, OP_JF:
		return 2
	case OP_IN, OP_OUT, OP_ARB:
		return 1
	case OP_HALT:
		return 0
	}

	return -1
}

// Mode is an operand addressing mode, one decimal digit per operand.
type Mode int64

//go:generate go tool stringer -linecomment -type=Mode
const (
	MODE_POSITION  = Mode(0) // pos
	MODE_IMMEDIATE = Mode(1) // imm
	MODE_RELATIVE  = Mode(2) // rel
)

// Instruction is a decoded view of the word at Pc. It is rebuilt on every
// machine cycle and is never retained.
type Instruction struct {
	Word     int64 // Raw instruction word.
	Pc       int   // Address of the instruction word.
	Base     int64 // Relative base of the owning machine.
	Relative bool  // Whether MODE_RELATIVE is understood.

	memory Memory
}

// Opcode returns the decoded opcode.
func (in Instruction) Opcode() Opcode {
	return Opcode(in.Word % 100)
}

// Mode returns the raw mode digit of operand n.
func (in Instruction) Mode(n int) Mode {
	modes := in.Word / 100
	for range n {
		modes /= 10
	}
	return Mode(modes % 10)
}

// index validates position as a memory index.
func (in Instruction) index(position int64) (index int, err error) {
	if position < 0 {
		err = ErrNegativePosition{Pc: in.Pc, Opcode: in.Opcode(), Position: position}
		return
	}
	if position >= int64(len(in.memory)) {
		err = ErrOutOfRange{Pc: in.Pc, Opcode: in.Opcode(), Position: position}
		return
	}

	index = int(position)
	return
}

// operand returns the raw word of operand n.
func (in Instruction) operand(n int) (value int64, err error) {
	index, err := in.index(int64(in.Pc + 1 + n))
	if err != nil {
		return
	}

	value = in.memory[index]
	return
}

// resolve returns the memory index that operand n refers to, for modes
// that refer to memory.
func (in Instruction) resolve(n int, mode Mode) (index int, err error) {
	raw, err := in.operand(n)
	if err != nil {
		return
	}

	switch mode {
	case MODE_POSITION:
		index, err = in.index(raw)
	case MODE_RELATIVE:
		index, err = in.index(in.Base + raw)
	default:
		err = ErrUnknownParameterType{Pc: in.Pc, Mode: mode}
	}

	return
}

// checkMode rejects mode digits the machine does not understand.
func (in Instruction) checkMode(mode Mode) (err error) {
	switch mode {
	case MODE_POSITION, MODE_IMMEDIATE:
		return
	case MODE_RELATIVE:
		if in.Relative {
			return
		}
	}

	return ErrUnknownParameterType{Pc: in.Pc, Mode: mode}
}

// Parameter returns the value of operand n.
func (in Instruction) Parameter(n int) (value int64, err error) {
	mode := in.Mode(n)
	err = in.checkMode(mode)
	if err != nil {
		return
	}

	if mode == MODE_IMMEDIATE {
		return in.operand(n)
	}

	index, err := in.resolve(n, mode)
	if err != nil {
		return
	}

	value = in.memory[index]
	return
}

// Address returns the memory index operand n writes to. Only memory
// referencing modes are legal write targets.
func (in Instruction) Address(n int) (index int, err error) {
	mode := in.Mode(n)
	err = in.checkMode(mode)
	if err != nil {
		return
	}

	if mode == MODE_IMMEDIATE {
		err = ErrInvalidParameterType{Pc: in.Pc, Mode: mode, Operation: "assign"}
		return
	}

	return in.resolve(n, mode)
}

// Target converts a jump target value into a program counter.
func (in Instruction) Target(value int64) (pc int, err error) {
	if value < 0 {
		err = ErrNegativePosition{Pc: in.Pc, Opcode: in.Opcode(), Position: value}
		return
	}

	pc = int(value)
	return
}

// String returns a one line disassembly of the instruction.
func (in Instruction) String() (out string) {
	op := in.Opcode()
	count := op.Operands()
	if count < 0 {
		return fmt.Sprintf("%d", in.Word)
	}

	args := make([]string, 0, count)
	for n := range count {
		raw, err := in.operand(n)
		if err != nil {
			args = append(args, "?")
			continue
		}
		switch mode := in.Mode(n); mode {
		case MODE_POSITION:
			args = append(args, fmt.Sprintf("%d", raw))
		default:
			args = append(args, fmt.Sprintf("%v:%d", mode.String(), raw))
		}
	}

	out = op.String()
	if len(args) > 0 {
		out += " " + strings.Join(args, ",")
	}

	return
}
