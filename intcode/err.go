package intcode

import (
	"errors"
	"strconv"

	"github.com/ezrec/intcode/translate"
)

var f = translate.From

// itoa renders a number without locale digit grouping, as the message
// printer would otherwise group the digits of %d.
func itoa(value int64) string {
	return strconv.FormatInt(value, 10)
}

var (
	// ErrUnknown is a contract violation, such as a machine halting when
	// an output was required.
	ErrUnknown = errors.New(f("unknown error"))
)

// ErrUnknownOpcode reports an instruction word with no matching opcode.
type ErrUnknownOpcode struct {
	Pc     int
	Opcode Opcode
}

func (err ErrUnknownOpcode) Error() string {
	return f("pc: %v, unknown opcode %v", itoa(int64(err.Pc)), itoa(int64(err.Opcode)))
}

func (err ErrUnknownOpcode) Is(target error) (ok bool) {
	_, ok = target.(ErrUnknownOpcode)
	return
}

// ErrUnknownParameterType reports an operand mode digit that is not
// understood by the machine.
type ErrUnknownParameterType struct {
	Pc   int
	Mode Mode
}

func (err ErrUnknownParameterType) Error() string {
	return f("pc: %v, unknown parameter type %v", itoa(int64(err.Pc)), itoa(int64(err.Mode)))
}

func (err ErrUnknownParameterType) Is(target error) (ok bool) {
	_, ok = target.(ErrUnknownParameterType)
	return
}

// ErrInvalidParameterType reports a known mode used where the operation
// cannot accept it, such as an immediate write target.
type ErrInvalidParameterType struct {
	Pc        int
	Mode      Mode
	Operation string
}

func (err ErrInvalidParameterType) Error() string {
	return f("pc: %v, invalid parameter type %v for operation %v", itoa(int64(err.Pc)), itoa(int64(err.Mode)), err.Operation)
}

func (err ErrInvalidParameterType) Is(target error) (ok bool) {
	_, ok = target.(ErrInvalidParameterType)
	return
}

// ErrNegativePosition reports a resolved address below zero.
type ErrNegativePosition struct {
	Pc       int
	Opcode   Opcode
	Position int64
}

func (err ErrNegativePosition) Error() string {
	return f("pc: %v, opcode %v has negative position parameter %v", itoa(int64(err.Pc)), itoa(int64(err.Opcode)), itoa(err.Position))
}

func (err ErrNegativePosition) Is(target error) (ok bool) {
	_, ok = target.(ErrNegativePosition)
	return
}

// ErrOutOfRange reports a resolved address at or past the end of memory.
type ErrOutOfRange struct {
	Pc       int
	Opcode   Opcode
	Position int64
}

func (err ErrOutOfRange) Error() string {
	return f("pc: %v, opcode %v has out of range position %v", itoa(int64(err.Pc)), itoa(int64(err.Opcode)), itoa(err.Position))
}

func (err ErrOutOfRange) Is(target error) (ok bool) {
	_, ok = target.(ErrOutOfRange)
	return
}

// ErrMissingInput reports an input instruction with an exhausted tape.
type ErrMissingInput struct {
	Pc int
}

func (err ErrMissingInput) Error() string {
	return f("pc: %v, input instruction but no input", itoa(int64(err.Pc)))
}

func (err ErrMissingInput) Is(target error) (ok bool) {
	_, ok = target.(ErrMissingInput)
	return
}

// ErrParseNumber reports a program element that is not an integer.
type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}
