package arithmetic

import (
	"strconv"
	"strings"
)

// Notation selects how an expression is written.
type Notation int8

const (
	// Infix is notation with operators between operands and parentheses for
	// grouping, e.g. "(2+3)*4". It is the zero value.
	Infix Notation = iota
	// Postfix is notation with operators after their operands, separated by
	// spaces, e.g. "2 3 + 4 *".
	Postfix
)

func (n Notation) String() string {
	switch n {
	case Infix:
		return "infix"
	case Postfix:
		return "postfix"
	default:
		return "Notation(" + strconv.Itoa(int(n)) + ")"
	}
}

// ParseNotation returns the notation named by s, ignoring case.
func ParseNotation(s string) (Notation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "infix":
		return Infix, nil
	case "postfix", "rpn":
		return Postfix, nil
	default:
		return 0, &NotationError{Notation: s}
	}
}

// Set implements pflag.Value so that a Notation can be used directly as a
// command-line flag.
func (n *Notation) Set(s string) error {
	v, err := ParseNotation(s)
	if err != nil {
		return err
	}
	*n = v
	return nil
}

// Type implements pflag.Value.
func (n *Notation) Type() string {
	return "notation"
}

// NotationError is an error indicating an unknown notation. It describes the
// configuration of a caller rather than an expression, so it is not an
// InputError.
type NotationError struct {
	Notation string
}

func (err *NotationError) Error() string {
	return "no notation defined for " + strconv.Quote(err.Notation) + " (want infix or postfix)"
}
