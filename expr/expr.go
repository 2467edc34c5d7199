// Package expr contains small text algorithms built on top
// of container/stack.
package expr

import (
	"math"
	"strconv"
	"strings"

	"github.com/eaugeas/dstruct/container/stack"
	"github.com/eaugeas/dstruct/errors"
)

var closers = map[rune]rune{
	')': '(',
	']': '[',
	'}': '{',
}

// IsBalanced returns true if every bracket in s is closed by
// a bracket of the same kind in the right order. Only the
// brackets ()[]{} are considered, any other rune is ignored
func IsBalanced(s string) bool {
	open := stack.New[rune]()

	for _, r := range s {
		switch r {
		case '(', '[', '{':
			open.Push(r)
		case ')', ']', '}':
			top, ok := open.Pop()
			if !ok || top != closers[r] {
				return false
			}
		}
	}

	return open.IsEmpty()
}

// Reverse returns s with its runes in reverse order
func Reverse(s string) string {
	runes := stack.New[rune]()
	for _, r := range s {
		runes.Push(r)
	}

	var b strings.Builder
	b.Grow(len(s))
	for r, ok := runes.Pop(); ok; r, ok = runes.Pop() {
		b.WriteRune(r)
	}

	return b.String()
}

// EvalPostfix evaluates an expression in reverse polish
// notation, such as "3 4 + 2 *". Tokens are separated by
// whitespace. Operands are finite decimal numbers and the
// supported operators are + - * and /. Any other token, such as
// NaN, Inf or a hexadecimal literal, is an unknown operator. Division follows IEEE 754, so dividing by
// zero yields an infinity rather than an error.
func EvalPostfix(s string) (float64, error) {
	operands := stack.New[float64]()

	for _, token := range strings.Fields(s) {
		if v, ok := parseOperand(token); ok {
			operands.Push(v)
			continue
		}

		apply, ok := operators[token]
		if !ok {
			return 0, errors.Errorf(errors.ErrorCodeUnknownOperator, "unknown operator: %s", token)
		}

		b, okb := operands.Pop()
		a, oka := operands.Pop()
		if !oka || !okb {
			return 0, errors.Errorf(errors.ErrorCodeMalformedExpression,
				"operator %s requires two operands", token)
		}

		operands.Push(apply(a, b))
	}

	result, ok := operands.Pop()
	switch {
	case !ok:
		return 0, errors.New(errors.ErrorCodeMalformedExpression, "empty expression")
	case !operands.IsEmpty():
		return 0, errors.Errorf(errors.ErrorCodeMalformedExpression,
			"%d operands left without operator", operands.Len())
	}

	return result, nil
}

// parseOperand accepts finite decimal literals only
func parseOperand(token string) (float64, bool) {
	if strings.ContainsAny(token, "xX") {
		return 0, false
	}

	v, err := strconv.ParseFloat(token, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}

	return v, true
}

var operators = map[string]func(a, b float64) float64{
	"+": func(a, b float64) float64 { return a + b },
	"-": func(a, b float64) float64 { return a - b },
	"*": func(a, b float64) float64 { return a * b },
	"/": func(a, b float64) float64 { return a / b },
}
