package intcode

import (
	"strconv"
	"strings"
)

// Memory is a flat program image of signed words.
type Memory []int64

// Parse decodes comma separated base-10 integers into a program image.
func Parse(text string) (memory Memory, err error) {
	text = strings.TrimSpace(text)
	if len(text) == 0 {
		return
	}

	for word := range strings.SplitSeq(text, ",") {
		word = strings.TrimSpace(word)
		var value int64
		value, err = strconv.ParseInt(word, 10, 64)
		if err != nil {
			err = ErrParseNumber(word)
			memory = nil
			return
		}
		memory = append(memory, value)
	}

	return
}

// String renders the memory in the same encoding Parse accepts.
func (memory Memory) String() string {
	words := make([]string, len(memory))
	for n, value := range memory {
		words[n] = strconv.FormatInt(value, 10)
	}

	return strings.Join(words, ",")
}

// Clone returns an independent copy of the memory, zero extended to at
// least size words.
func (memory Memory) Clone(size int) (clone Memory) {
	clone = make(Memory, max(size, len(memory)))
	copy(clone, memory)
	return
}
