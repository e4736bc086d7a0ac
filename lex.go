package arithmetic

import "strings"

// Operators contains the characters which are binary operators.
const Operators = "+-*/"

// Delimiter separates terms in postfix expressions.
const Delimiter = ' '

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

func isOperator(r rune) bool {
	return strings.ContainsRune(Operators, r)
}

// lexInfix splits an infix expression into maximal runs of digits and single
// operator or parenthesis characters. Whitespace is not allowed.
func lexInfix(src string) ([]Token, error) {
	var toks []Token
	var num strings.Builder
	start, col := 0, 0
	flush := func() {
		if num.Len() == 0 {
			return
		}
		toks = append(toks, Token{Kind: Operand, Text: num.String(), Col: start})
		num.Reset()
	}
	for _, r := range src {
		col++
		switch {
		case isDigit(r):
			if num.Len() == 0 {
				start = col
			}
			num.WriteRune(r)
		case isOperator(r):
			flush()
			toks = append(toks, Token{Kind: Operator, Text: string(r), Col: col})
		case r == '(', r == ')':
			flush()
			toks = append(toks, Token{Kind: Paren, Text: string(r), Col: col})
		default:
			return nil, unallowed(src, col, r)
		}
	}
	flush()
	return toks, nil
}

// lexPostfix scans a space-delimited postfix expression into slots. A space or
// an operator closes the current slot unless the preceding character was a
// space, so runs of spaces never produce empty slots. An operator then occupies
// a slot of its own. Digits accumulate into the current slot.
func lexPostfix(src string) (Sequence, error) {
	var seq Sequence
	// open is whether the current slot already has a token, which is then the
	// last element of seq.
	open := false
	prev, col := rune(-1), 0
	for _, r := range src {
		col++
		switch {
		case r == Delimiter, isOperator(r):
			if prev != Delimiter {
				open = false
			}
			// Either this operator or the spaces before it closed the slot,
			// so an operator always takes a fresh one.
			if r != Delimiter {
				seq.Append(Token{Kind: Operator, Text: string(r), Col: col})
				open = true
			}
		case isDigit(r):
			if !open {
				seq.Append(Token{Kind: Operand, Col: col})
				open = true
			}
			last := &seq[len(seq)-1]
			if last.Kind != Operand {
				return nil, &ExpressionError{Input: src, Col: col, Msg: "digit " + string(r) + " joined to operator " + last.Text}
			}
			last.Text += string(r)
		default:
			return nil, unallowed(src, col, r)
		}
		prev = r
	}
	return seq, nil
}
