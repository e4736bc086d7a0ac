package arithmetic

import (
	"math/big"
	"strconv"
	"strings"
)

// DefaultPrec is the precision in bits of inexact quotients when none is given.
const DefaultPrec = 64

// displayDigits is the number of significant digits in a result that is not an
// integer.
const displayDigits = 14

// Calculator evaluates infix and postfix expressions. A Calculator holds only
// configuration, so it is safe to use concurrently. The zero value is not
// usable; create calculators with New.
type Calculator struct {
	prec uint
}

// Option is an option used when creating a Calculator.
type Option interface {
	option(Calculator) Calculator
}

type precopt uint

// Prec sets the precision in bits to which a quotient is rounded when it has
// no finite decimal form. Addition, subtraction, multiplication, and all other
// division are exact at any size. Panics if prec is zero.
func Prec(prec uint) Option {
	if prec == 0 {
		panic("arithmetic: precision must be positive")
	}
	return precopt(prec)
}

func (o precopt) option(c Calculator) Calculator {
	c.prec = uint(o)
	return c
}

// New creates a calculator. The options are applied in order.
func New(opts ...Option) *Calculator {
	c := Calculator{prec: DefaultPrec}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		c = opt.option(c)
	}
	return &c
}

// Prec returns the precision in bits of inexact quotients.
func (c *Calculator) Prec() uint {
	return c.prec
}

// CalculateInfix parses and reduces an expression in infix notation.
func (c *Calculator) CalculateInfix(src string) (string, error) {
	seq, err := ParseInfix(src)
	if err != nil {
		return "", err
	}
	return c.reduce(src, seq)
}

// CalculatePostfix parses and reduces an expression in postfix notation.
func (c *Calculator) CalculatePostfix(src string) (string, error) {
	seq, err := ParsePostfix(src)
	if err != nil {
		return "", err
	}
	return c.reduce(src, seq)
}

// Calculate parses an expression in the given notation and reduces it.
func (c *Calculator) Calculate(n Notation, src string) (string, error) {
	seq, err := Parse(n, src)
	if err != nil {
		return "", err
	}
	return c.reduce(src, seq)
}

// Reduce evaluates a postfix sequence. It repeatedly replaces the leftmost
// operator and the two operands before it with the result until one operand
// remains, and returns that operand's text. seq is not modified.
//
// Intermediate operands hold exact decimal text. Only the final result is
// rounded for display: integers are written in full, and other values to 14
// significant digits without an exponent.
func (c *Calculator) Reduce(seq Sequence) (string, error) {
	return c.reduce(seq.String(), seq)
}

func (c *Calculator) reduce(src string, seq Sequence) (string, error) {
	seq = append(Sequence(nil), seq...)
	var last *big.Rat
	for len(seq) > 1 {
		i := 0
		for i < len(seq) && seq[i].Kind == Operand {
			i++
		}
		if i == len(seq) {
			return "", &ExpressionError{Input: src, Msg: strconv.Itoa(len(seq)) + " operands left with no operator"}
		}
		tok := seq[i]
		if tok.Kind != Operator {
			return "", notOperand(src, tok)
		}
		if i < 2 {
			return "", &ExpressionError{Input: src, Col: tok.Col, Msg: "operator " + tok.Text + " needs two operands"}
		}
		v, err := c.apply(src, tok, seq[i-2], seq[i-1])
		if err != nil {
			return "", err
		}
		last = v
		n := len(seq)
		seq.Replace(i-2, i+1, Token{Kind: Operand, Text: exact(v)})
		if len(seq) != n-2 {
			return "", &ExpressionError{Input: src, Col: tok.Col, Msg: "inconsistent reduction: " + strconv.Itoa(n) + " tokens became " + strconv.Itoa(len(seq))}
		}
	}
	if len(seq) == 0 {
		return "", &ExpressionError{Input: src, Msg: "no expression"}
	}
	if seq[0].Kind != Operand {
		return "", notOperand(src, seq[0])
	}
	if last != nil {
		// The last reduction always leaves the single remaining operand.
		return display(last), nil
	}
	return seq[0].Text, nil
}

// apply computes x op y. The result is exact unless it is a quotient with no
// finite decimal form, which is rounded to the calculator's precision.
func (c *Calculator) apply(src string, op, x, y Token) (*big.Rat, error) {
	o, ok := operators[op.Text]
	if !ok {
		panic("arithmetic: unknown operator " + strconv.Quote(op.Text))
	}
	l, err := num(src, x)
	if err != nil {
		return nil, err
	}
	r, err := num(src, y)
	if err != nil {
		return nil, err
	}
	if op.Text == "/" && r.Sign() == 0 {
		return nil, &ExpressionError{Input: src, Col: op.Col, Msg: "division by zero"}
	}
	v := o.apply(l, l, r)
	if _, ok := places(v); !ok {
		v, _ = new(big.Float).SetPrec(c.prec).SetRat(v).Rat(v)
	}
	return v, nil
}

// num parses an operand exactly.
func num(src string, tok Token) (*big.Rat, error) {
	v, ok := new(big.Rat).SetString(tok.Text)
	if !ok {
		return nil, &ExpressionError{Input: src, Col: tok.Col, Msg: "invalid number " + strconv.Quote(tok.Text)}
	}
	return v, nil
}

var (
	five = big.NewInt(5)
	ten  = big.NewInt(10)
)

// places returns the number of digits after the decimal point in the exact
// decimal form of v, and whether v has a finite decimal form at all.
func places(v *big.Rat) (int, bool) {
	d := new(big.Int).Set(v.Denom())
	twos := int(d.TrailingZeroBits())
	d.Rsh(d, uint(twos))
	fives := 0
	var q, m big.Int
	for {
		q.QuoRem(d, five, &m)
		if m.Sign() != 0 {
			break
		}
		d.Set(&q)
		fives++
	}
	return max(twos, fives), d.IsInt64() && d.Int64() == 1
}

// exact gives the exact decimal text of v, which must have a finite decimal
// form.
func exact(v *big.Rat) string {
	if v.IsInt() {
		return v.Num().String()
	}
	n, _ := places(v)
	return v.FloatString(n)
}

// display gives the text of a final result. Integers are written in full.
// Other values are rounded to displayDigits significant digits, or to the
// nearest integer when the integer part alone is longer, and written without
// an exponent or trailing zeros.
func display(v *big.Rat) string {
	if v.IsInt() {
		return v.Num().String()
	}
	t := new(big.Int).Quo(v.Num(), v.Denom())
	var n int
	if t.Sign() != 0 {
		n = max(0, displayDigits-len(t.Abs(t).String()))
	} else {
		// Count the zeros between the point and the first significant digit.
		t.Abs(v.Num())
		for t.Mul(t, ten).Cmp(v.Denom()) < 0 {
			n++
		}
		n += displayDigits
	}
	s := v.FloatString(n)
	if strings.Contains(s, ".") {
		s = strings.TrimSuffix(strings.TrimRight(s, "0"), ".")
	}
	return s
}

// notOperand creates the error for a token that cannot be reduced.
func notOperand(src string, tok Token) error {
	if tok.Kind == Paren {
		return &ExpressionError{Input: src, Col: tok.Col, Msg: "open parenthesis with no close parenthesis"}
	}
	return &ExpressionError{Input: src, Col: tok.Col, Msg: "operator " + tok.Text + " needs two operands"}
}

var defaultCalculator = New()

// CalculateInfix is a shortcut to calculate an infix expression with the
// default precision.
func CalculateInfix(src string) (string, error) {
	return defaultCalculator.CalculateInfix(src)
}

// CalculatePostfix is a shortcut to calculate a postfix expression with the
// default precision.
func CalculatePostfix(src string) (string, error) {
	return defaultCalculator.CalculatePostfix(src)
}

// Calculate is a shortcut to calculate an expression in either notation with
// the default precision.
func Calculate(n Notation, src string) (string, error) {
	return defaultCalculator.Calculate(n, src)
}

// Reduce is a shortcut to reduce a postfix sequence with the default
// precision.
func Reduce(seq Sequence) (string, error) {
	return defaultCalculator.Reduce(seq)
}
