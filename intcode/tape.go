package intcode

// Tape is a caller owned input cursor. A machine advances it on every input
// instruction, so a tape passed to successive Execute calls keeps its place.
type Tape struct {
	Input []int64

	readIndex int
}

// NewTape creates a tape holding values.
func NewTape(values ...int64) *Tape {
	return &Tape{Input: values}
}

// Next returns the next unread value.
func (tape *Tape) Next() (value int64, ok bool) {
	if tape == nil || tape.readIndex >= len(tape.Input) {
		return
	}

	value = tape.Input[tape.readIndex]
	tape.readIndex++
	return value, true
}

// Append adds values to the end of the tape. A nil tape stays empty.
func (tape *Tape) Append(values ...int64) {
	if tape == nil {
		return
	}

	tape.Input = append(tape.Input, values...)
}

// Remaining returns the count of unread values.
func (tape *Tape) Remaining() int {
	if tape == nil {
		return 0
	}

	return len(tape.Input) - tape.readIndex
}

// Rewind moves the cursor back to the first value.
func (tape *Tape) Rewind() {
	if tape == nil {
		return
	}

	tape.readIndex = 0
}
