// Package script evaluates Starlark expressions into integer lists, for
// writing program inputs and phase sets such as "range(5, 10)".
package script

import (
	"maps"
	"slices"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/intcode/translate"
)

var f = translate.From

// ErrParseExpression reports an expression that does not evaluate to an
// integer or a sequence of integers.
type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

// Ints evaluates expr with the given predefined names. An integer result
// yields a single value; an iterable of integers yields its elements.
func Ints(expr string, defines map[string]int64) (values []int64, err error) {
	thread := starlark.Thread{Name: "script"}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for _, key := range slices.Sorted(maps.Keys(defines)) {
		pred[key] = starlark.MakeInt64(defines[key])
	}

	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return
	}

	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}

	if st_int, ok := st_rc.(starlark.Int); ok {
		var value int64
		value, err = toInt64(expr, st_int)
		if err != nil {
			return
		}
		values = []int64{value}
		return
	}

	iter := starlark.Iterate(st_rc)
	if iter == nil {
		err = ErrParseExpression(expr)
		return
	}
	defer iter.Done()

	var item starlark.Value
	for iter.Next(&item) {
		st_int, ok := item.(starlark.Int)
		if !ok {
			err = ErrParseExpression(expr)
			values = nil
			return
		}
		var value int64
		value, err = toInt64(expr, st_int)
		if err != nil {
			values = nil
			return
		}
		values = append(values, value)
	}

	return
}

// toInt64 narrows a Starlark integer.
func toInt64(expr string, st_int starlark.Int) (value int64, err error) {
	value, ok := st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
	}

	return
}
