package arithmetic

import "math/big"

type operator struct {
	// prec is the precedence value. Higher is more binding.
	prec int8
	// apply sets z to the exact result of the operation. It must not be called
	// with a zero divisor for division.
	apply func(z, x, y *big.Rat) *big.Rat
}

// operators maps each operator to its precedence and arithmetic. All operators
// are left-associative.
var operators = map[string]operator{
	"+": {1, (*big.Rat).Add},
	"-": {1, (*big.Rat).Sub},
	"*": {5, (*big.Rat).Mul},
	"/": {5, (*big.Rat).Quo},
}

// ParseInfix converts an infix expression to a postfix sequence using the
// shunting-yard algorithm. Operands are runs of digits; operators and
// parentheses separate them, and nothing else is allowed, including spaces.
//
// An open parenthesis which is never closed is left in the output as a Paren
// token, which Reduce rejects. A close parenthesis without a matching open one
// is an error.
func ParseInfix(src string) (Sequence, error) {
	toks, err := lexInfix(src)
	if err != nil {
		return nil, err
	}
	var out Sequence
	var stack []Token
	for _, tok := range toks {
		switch tok.Kind {
		case Operand:
			out.Append(tok)
		case Operator:
			prec := operators[tok.Text].prec
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				if top.Kind != Operator || operators[top.Text].prec < prec {
					break
				}
				out.Append(top)
				stack = stack[:len(stack)-1]
			}
			stack = append(stack, tok)
		case Paren:
			if tok.Text == "(" {
				stack = append(stack, tok)
				continue
			}
			for len(stack) > 0 && stack[len(stack)-1].Kind != Paren {
				out.Append(stack[len(stack)-1])
				stack = stack[:len(stack)-1]
			}
			if len(stack) == 0 {
				return nil, &ExpressionError{Input: src, Col: tok.Col, Msg: "close parenthesis with no open parenthesis"}
			}
			stack = stack[:len(stack)-1]
		default:
			panic("arithmetic: unknown token: " + tok.String())
		}
	}
	for i := len(stack) - 1; i >= 0; i-- {
		out.Append(stack[i])
	}
	return out, nil
}

// ParsePostfix converts a space-delimited postfix expression to a sequence.
// Operands are runs of digits; an operator ends the term before it even without
// a delimiter. Parentheses are not allowed.
func ParsePostfix(src string) (Sequence, error) {
	return lexPostfix(src)
}

// Parse converts an expression in the given notation to a postfix sequence.
func Parse(n Notation, src string) (Sequence, error) {
	switch n {
	case Infix:
		return ParseInfix(src)
	case Postfix:
		return ParsePostfix(src)
	default:
		return nil, &NotationError{Notation: n.String()}
	}
}
