// Package calc evaluates integer expressions written in prefix (Polish)
// notation, such as "* 10 + 1 2".
package calc

import (
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/govalues/i64"
)

// LastToken refers to the result of the previous evaluation.
const LastToken = "_"

type binaryFunc func(a, b any) (i64.Int64, error)

type unaryFunc func(a any) (i64.Int64, error)

func predicate(op func(a, b any) (bool, error)) binaryFunc {
	return func(a, b any) (i64.Int64, error) {
		ok, err := op(a, b)
		if err != nil {
			return i64.Int64{}, err
		}
		if ok {
			return i64.One, nil
		}
		return i64.Zero, nil
	}
}

func comp(a, b any) (i64.Int64, error) {
	c, err := i64.Comp(a, b)
	if err != nil {
		return i64.Int64{}, err
	}
	return i64.New(int64(c)), nil
}

func abs(a any) (i64.Int64, error) {
	x, err := i64.Resolve(a)
	if err != nil {
		return i64.Int64{}, err
	}
	return x.Abs(), nil
}

var binaryOps = map[string]binaryFunc{
	"+":    i64.Add,
	"-":    i64.Subtract,
	"*":    i64.Multiply,
	"/":    i64.Divide,
	"%":    i64.Mod,
	"**":   i64.Pow,
	"<<":   i64.ShiftLeft,
	">>":   i64.ShiftRight,
	">>>":  i64.ShiftRightUnsigned,
	"rotl": i64.RotateLeft,
	"rotr": i64.RotateRight,
	"&":    i64.And,
	"|":    i64.Or,
	"^":    i64.Xor,
	"nand": i64.Nand,
	"nor":  i64.Nor,
	"xnor": i64.Xnor,
	"==":   predicate(i64.Eq),
	"!=":   predicate(i64.Ne),
	">":    predicate(i64.Gt),
	">=":   predicate(i64.Gte),
	"<":    predicate(i64.Lt),
	"<=":   predicate(i64.Lte),
	"cmp":  comp,
	"rand": i64.Random,
}

var unaryOps = map[string]unaryFunc{
	"~":   i64.Not,
	"neg": i64.Negative,
	"abs": abs,
}

// Operators returns the sorted list of supported operators.
func Operators() []string {
	ops := make([]string, 0, len(binaryOps)+len(unaryOps))
	for op := range binaryOps {
		ops = append(ops, op)
	}
	for op := range unaryOps {
		ops = append(ops, op)
	}
	sort.Strings(ops)
	return ops
}

// Calculator evaluates expressions and remembers the last result.
// The zero value is ready to use.
// Calculator is not safe for concurrent use.
type Calculator struct {
	last i64.Handle
}

// Last returns the result of the last successful evaluation.
func (c *Calculator) Last() i64.Int64 {
	return c.last.Value()
}

// Evaluate computes the value of an expression in prefix notation.
// Operands are any text accepted by [i64.Parse], or "_" for the previous
// result.
func (c *Calculator) Evaluate(input string) (i64.Int64, error) {
	tokens, err := parseTokens(input)
	if err != nil {
		return i64.Int64{}, errors.Wrap(err, "parsing tokens")
	}
	stack, err := c.processTokens(tokens)
	if err != nil {
		return i64.Int64{}, errors.Wrap(err, "processing tokens")
	}
	if len(stack) != 1 {
		return i64.Int64{}, errors.Errorf("post-processed stack contains %v, expected exactly one item", stack)
	}
	if _, err := c.last.Set(stack[0]); err != nil {
		return i64.Int64{}, err
	}
	return stack[0], nil
}

// Evaluate is like [Calculator.Evaluate] but starts from an empty history.
func Evaluate(input string) (i64.Int64, error) {
	var c Calculator
	return c.Evaluate(input)
}

func parseTokens(input string) ([]string, error) {
	tokens := strings.Fields(input)
	if len(tokens) == 0 {
		return nil, errors.New("no tokens")
	}
	return tokens, nil
}

func (c *Calculator) processTokens(tokens []string) ([]i64.Int64, error) {
	stack := make([]i64.Int64, 0, len(tokens))
	var err error
	for i := len(tokens) - 1; i >= 0; i-- {
		token := tokens[i]
		if op, ok := binaryOps[strings.ToLower(token)]; ok {
			stack, err = processBinary(stack, token, op)
		} else if op, ok := unaryOps[strings.ToLower(token)]; ok {
			stack, err = processUnary(stack, token, op)
		} else {
			stack, err = c.processOperand(stack, token)
		}
		if err != nil {
			return nil, errors.Wrapf(err, "processing token %q", token)
		}
	}
	return stack, nil
}

func processBinary(stack []i64.Int64, token string, op binaryFunc) ([]i64.Int64, error) {
	if len(stack) < 2 {
		return nil, errors.New("not enough operands")
	}
	left := stack[len(stack)-1]
	right := stack[len(stack)-2]
	stack = stack[:len(stack)-2]
	result, err := op(left, right)
	if err != nil {
		return nil, errors.Wrapf(err, "evaluating \"%v %s %v\"", left, token, right)
	}
	return append(stack, result), nil
}

func processUnary(stack []i64.Int64, token string, op unaryFunc) ([]i64.Int64, error) {
	if len(stack) < 1 {
		return nil, errors.New("not enough operands")
	}
	operand := stack[len(stack)-1]
	stack = stack[:len(stack)-1]
	result, err := op(operand)
	if err != nil {
		return nil, errors.Wrapf(err, "evaluating \"%s %v\"", token, operand)
	}
	return append(stack, result), nil
}

func (c *Calculator) processOperand(stack []i64.Int64, token string) ([]i64.Int64, error) {
	if token == LastToken {
		return append(stack, c.last.Value()), nil
	}
	x, err := i64.Parse(token)
	if err != nil {
		return nil, err
	}
	return append(stack, x), nil
}
