package amplifier

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ezrec/intcode/intcode"
)

var (
	serial1 = intcode.Memory{3, 15, 3, 16, 1002, 16, 10, 16, 1, 16, 15, 15, 4, 15, 99, 0, 0}
	serial2 = intcode.Memory{3, 23, 3, 24, 1002, 24, 10, 24, 1002, 23, -1, 23, 101, 5, 23, 23, 1, 24, 23, 23, 4, 23, 99, 0, 0}
	serial3 = intcode.Memory{3, 31, 3, 32, 1002, 32, 10, 32, 1001, 31, -2, 31, 1007, 31, 0, 33, 1002, 33, 7, 33, 1, 33, 31, 31, 1, 32, 31, 31, 4, 31, 99, 0, 0, 0}

	feedback1 = intcode.Memory{3, 26, 1001, 26, -4, 26, 3, 27, 1002, 27, 2, 27, 1, 27, 26, 27, 4, 27, 1001, 28, -1, 28, 1005, 28, 6, 99, 0, 0, 5}
	feedback2 = intcode.Memory{3, 52, 1001, 52, -5, 52, 3, 53, 1, 52, 56, 54, 1007, 54, 5, 55, 1005, 55, 26, 1001, 54, -5, 54, 1105, 1, 12, 1, 53, 54, 53, 1008, 54, 0, 55, 1001, 55, 1, 55, 2, 53, 55, 53, 4, 53, 1001, 56, -1, 56, 1005, 56, 6, 99, 0, 0, 0, 0, 10}
)

func TestAmplifier(t *testing.T) {
	assert := assert.New(t)

	amp := NewAmplifier(nil, intcode.Memory{3, 0, 3, 1, 1, 0, 1, 0, 4, 0, 99}, 7)
	assert.Equal(int64(7), amp.Phase)

	output, err := amp.Amplify(5)
	assert.NoError(err)
	assert.Equal(int64(12), output)

	output, ok, err := amp.Reamplify(1)
	assert.NoError(err)
	assert.False(ok)
	assert.Equal(int64(0), output)
}

func TestAmplifier_Halt(t *testing.T) {
	assert := assert.New(t)

	amp := NewAmplifier(nil, intcode.Memory{3, 0, 3, 0, 99}, 1)
	_, err := amp.Amplify(2)
	assert.Equal(intcode.ErrUnknown, err)

	amp = NewAmplifier(nil, intcode.Memory{3, 0, 3, 0, 3, 0, 99}, 1)
	_, err = amp.Amplify(2)
	assert.Equal(intcode.ErrMissingInput{Pc: 4}, err)
}

func TestAmplifier_Template(t *testing.T) {
	assert := assert.New(t)

	program := serial1.Clone(0)
	net := NewNetwork(nil, program, []int64{4, 3, 2, 1, 0})
	_, err := net.Serial(0)
	assert.NoError(err)
	assert.Equal(serial1, program)
	assert.NotSame(net.Amplifiers[0].Machine, net.Amplifiers[1].Machine)
}

func TestNetwork_Serial(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name    string
		program intcode.Memory
		phases  []int64
		output  int64
	}){
		{"serial1", serial1, []int64{4, 3, 2, 1, 0}, 43210},
		{"serial2", serial2, []int64{0, 1, 2, 3, 4}, 54321},
		{"serial3", serial3, []int64{1, 0, 4, 3, 2}, 65210},
	}

	for _, entry := range table {
		net := NewNetwork(nil, entry.program, entry.phases)
		output, err := net.Serial(0)
		assert.NoError(err, entry.name)
		assert.Equal(entry.output, output, entry.name)
	}
}

func TestNetwork_Feedback(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name    string
		program intcode.Memory
		phases  []int64
		output  int64
	}){
		{"feedback1", feedback1, []int64{9, 8, 7, 6, 5}, 139629729},
		{"feedback2", feedback2, []int64{9, 7, 8, 5, 6}, 18216},
	}

	for _, entry := range table {
		net := NewNetwork(nil, entry.program, entry.phases)
		output, err := net.Evaluate(FEEDBACK, 0)
		assert.NoError(err, entry.name)
		assert.Equal(entry.output, output, entry.name)
	}
}

func TestNetwork_FeedbackDiffersFromSerial(t *testing.T) {
	assert := assert.New(t)

	phases := []int64{9, 8, 7, 6, 5}

	serial, err := NewNetwork(nil, feedback1, phases).Evaluate(SERIAL, 0)
	assert.NoError(err)

	feedback, err := NewNetwork(nil, feedback1, phases).Evaluate(FEEDBACK, 0)
	assert.NoError(err)

	assert.Equal(int64(139629729), feedback)
	assert.NotEqual(feedback, serial)
}

func TestNetwork_FeedbackError(t *testing.T) {
	assert := assert.New(t)

	// Echoes the input once, then fails resolving a negative position.
	program := intcode.Memory{3, 0, 3, 0, 4, 0, 1, -1, 0, 0, 99}
	net := NewNetwork(nil, program, []int64{1, 2})

	_, err := net.Feedback(3)
	assert.Equal(intcode.ErrNegativePosition{Pc: 6, Opcode: intcode.OP_ADD, Position: -1}, err)
	assert.Equal(intcode.STATE_FAILED, net.Amplifiers[0].Machine.State())
	assert.Equal(intcode.STATE_SUSPENDED, net.Amplifiers[1].Machine.State())
}

func TestNetwork_Empty(t *testing.T) {
	assert := assert.New(t)

	net := NewNetwork(nil, serial1, nil)
	output, err := net.Feedback(17)
	assert.NoError(err)
	assert.Equal(int64(17), output)
}

func TestNetwork_Runner(t *testing.T) {
	assert := assert.New(t)

	// Reads the phase and input, then outputs the phase through the
	// relative base.
	relative := intcode.Memory{3, 0, 3, 1, 109, 1, 204, -1, 99}
	// Reads the phase and input, then outputs 7 stored past the program end.
	sized := intcode.Memory{3, 0, 3, 1, 1101, 7, 0, 20, 4, 20, 99}

	table := [](struct {
		name    string
		runner  *intcode.Runner
		program intcode.Memory
		output  int64
		err     error
	}){
		{"relative", &intcode.Runner{Relative: true}, relative, 5, nil},
		{"relative_disabled", nil, relative, 0,
			intcode.ErrUnknownOpcode{Pc: 4, Opcode: intcode.OP_ARB}},
		{"size", &intcode.Runner{Size: 32}, sized, 7, nil},
		{"size_default", &intcode.Runner{}, sized, 0,
			intcode.ErrOutOfRange{Pc: 4, Opcode: intcode.OP_ADD, Position: 20}},
	}

	for _, entry := range table {
		for _, mode := range []Mode{SERIAL, FEEDBACK} {
			net := NewNetwork(entry.runner, entry.program, []int64{5})
			output, err := net.Evaluate(mode, 0)
			assert.Equal(entry.err, err, "%v %v", entry.name, mode)
			assert.Equal(entry.output, output, "%v %v", entry.name, mode)
		}
	}
}

func TestNetwork_RunnerVerbose(t *testing.T) {
	assert := assert.New(t)

	runner := &intcode.Runner{Verbose: true, Relative: true, Size: 64}
	net := NewNetwork(runner, serial1, []int64{0, 1})

	assert.True(net.Verbose)
	for _, amp := range net.Amplifiers {
		assert.True(amp.Machine.Verbose)
		assert.True(amp.Machine.Relative)
		assert.Len(amp.Machine.Memory, 64)
	}

	assert.False(NewNetwork(nil, serial1, []int64{0}).Verbose)
}

func TestSearch(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	best, err := Search(ctx, nil, serial1, []int64{0, 1, 2, 3, 4}, SERIAL)
	require.NoError(err)
	require.Equal(int64(43210), best.Output)
	require.Equal([]int64{4, 3, 2, 1, 0}, best.Phases)

	best, err = Search(ctx, nil, serial2, []int64{0, 1, 2, 3, 4}, SERIAL)
	require.NoError(err)
	require.Equal(int64(54321), best.Output)
	require.Equal([]int64{0, 1, 2, 3, 4}, best.Phases)

	best, err = Search(ctx, nil, feedback1, []int64{5, 6, 7, 8, 9}, FEEDBACK)
	require.NoError(err)
	require.Equal(int64(139629729), best.Output)
	require.Equal([]int64{9, 8, 7, 6, 5}, best.Phases)

	best, err = Search(ctx, nil, feedback2, []int64{5, 6, 7, 8, 9}, FEEDBACK)
	require.NoError(err)
	require.Equal(int64(18216), best.Output)
	require.Equal([]int64{9, 7, 8, 5, 6}, best.Phases)
}

func TestSearch_Error(t *testing.T) {
	assert := assert.New(t)

	_, err := Search(context.Background(), nil, intcode.Memory{42}, []int64{0, 1, 2}, SERIAL)
	assert.True(errors.Is(err, intcode.ErrUnknownOpcode{}))
}

func TestSearch_Runner(t *testing.T) {
	assert := assert.New(t)

	relative := intcode.Memory{3, 0, 3, 1, 109, 1, 204, -1, 99}

	best, err := Search(context.Background(), &intcode.Runner{Relative: true}, relative, []int64{5}, FEEDBACK)
	assert.NoError(err)
	assert.Equal(Trial{Phases: []int64{5}, Output: 5}, best)

	_, err = Search(context.Background(), nil, relative, []int64{5}, FEEDBACK)
	assert.Equal(intcode.ErrUnknownOpcode{Pc: 4, Opcode: intcode.OP_ARB}, err)
}

func TestSearch_Cancelled(t *testing.T) {
	assert := assert.New(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Search(ctx, nil, serial1, []int64{0, 1, 2, 3, 4}, SERIAL)
	assert.ErrorIs(err, context.Canceled)
}

func TestMode_String(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("serial", SERIAL.String())
	assert.Equal("feedback", FEEDBACK.String())
}
