package arithmetic

import (
	"strconv"
	"strings"
)

// Kind is the kind of a token in a postfix sequence.
type Kind int8

const (
	kindNone Kind = iota
	// Operand is a number. Its text is decimal digits as written in the input,
	// or the decimal form of a reduced result.
	Operand
	// Operator is one of + - * /.
	Operator
	// Paren is an open parenthesis that was never closed. Only ParseInfix
	// produces it, and Reduce rejects it.
	Paren
)

func (k Kind) String() string {
	switch k {
	case Operand:
		return "Operand"
	case Operator:
		return "Operator"
	case Paren:
		return "Paren"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Token is a single element of a postfix sequence.
type Token struct {
	Kind Kind
	Text string
	// Col is the rune column at which the token starts in the source, counting
	// from 1. Operands computed during reduction have Col 0.
	Col int
}

func (t Token) String() string {
	return t.Kind.String() + ":" + t.Text + "@" + strconv.Itoa(t.Col)
}

// Sequence is an expression in postfix order.
type Sequence []Token

// Append adds tokens to the end of the sequence.
func (s *Sequence) Append(toks ...Token) {
	*s = append(*s, toks...)
}

// Replace replaces the tokens in [i, j) with tok, closing the gap. Panics if
// the range is out of bounds.
func (s *Sequence) Replace(i, j int, tok Token) {
	v := *s
	if i < 0 || j > len(v) || i >= j {
		panic("arithmetic: bad replace range " + strconv.Itoa(i) + ":" + strconv.Itoa(j) + " of " + strconv.Itoa(len(v)))
	}
	v[i] = tok
	*s = append(v[:i+1], v[j:]...)
}

// Texts returns the text of each token in order.
func (s Sequence) Texts() []string {
	r := make([]string, len(s))
	for i, t := range s {
		r[i] = t.Text
	}
	return r
}

// String formats the sequence as space-delimited postfix text. For sequences
// without Paren tokens, the result is valid input for ParsePostfix.
func (s Sequence) String() string {
	return strings.Join(s.Texts(), " ")
}
