// Package arithmetic implements a calculator for simple arithmetic expressions
// over non-negative integers in infix or postfix notation.
//
// Infix expressions are written without spaces, like "15/3-(2+(6-4))", with
// the usual precedence: * and / bind more tightly than + and -, and operators
// of equal precedence group left to right. Postfix expressions separate terms
// with spaces, like "12 4 + 3 *", and need no parentheses.
//
// Either notation is first parsed into a Sequence of tokens in postfix order,
// then reduced to a single number. Arithmetic is exact, except that a quotient
// with no finite decimal form is rounded to the calculator's precision, so
// "7/2" is "3.5" and "1/3" is "0.33333333333333". Every malformed expression,
// including one that divides by zero, results in an *ExpressionError.
//
package arithmetic
