// Package intcode implements a resumable integer virtual machine.
//
// A program is a flat image of signed words. Each instruction word encodes
// an opcode in its low two decimal digits and one addressing mode digit per
// operand above them. A Machine owns a private copy of its program and runs
// until it produces an output, halts, or fails. An output suspends the
// machine so that a later Execute resumes at the following instruction,
// reading input from a caller owned Tape.
//
// Relative addressing and the relative base adjustment opcode are an
// extension, enabled per machine with the Relative field.
//
// Runner drives a machine to completion, collecting every output.
package intcode
