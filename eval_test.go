package arithmetic_test

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zephyrtronium/arithmetic"
)

func TestCalculateInfix(t *testing.T) {
	cases := []struct {
		name string
		src  string
		r    string
	}{
		{"add", "10+5", "15"},
		{"paren-zero", "12-(4*3)", "0"},
		{"nested", "15/3-(2+(6-4))", "1"},
		{"num", "7", "7"},
		{"num-verbatim", "007", "007"},
		{"leading-zero", "007+1", "8"},
		{"paren-mul", "(12+4)*3", "48"},
		{"prec", "2+3*4", "14"},
		{"left-sub", "8-4-2", "2"},
		{"left-div", "8/4/2", "1"},
		{"div-mul", "8/4*2", "4"},
		{"frac", "7/2", "3.5"},
		{"frac-repeat", "1/3", "0.33333333333333"},
		{"frac-carry", "1/2*4", "2"},
		{"frac-round", "2/3", "0.66666666666667"},
		{"frac-restore", "1/3*3", "1"},
		{"frac-sum", "1/3+1/3+1/3", "1"},
		{"frac-exact", "1/10*3", "0.3"},
		{"frac-small", "1/100000", "0.00001"},
		{"frac-small-restore", "1/100000*100000", "1"},
		{"frac-neg", "1/4-1", "-0.75"},
		{"big-add", "18446744073709551617+0", "18446744073709551617"},
		{"big-mul", "4294967297*4294967297", "18446744082299486209"},
		{"big-sub", "123456789012345678901234567890-1", "123456789012345678901234567889"},
		{"big-div", "18446744082299486209/4294967297", "4294967297"},
		{"neg", "1-4", "-3"},
		{"neg-carry", "1-4*2+10", "3"},
		{"neg-zero", "(1-4)*0", "0"},
		{"chain", "2*(3+4)*5", "70"},
		{"redundant", "((((9))))", "9"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := arithmetic.CalculateInfix(c.src)
			require.NoError(t, err)
			require.Equal(t, c.r, r)
		})
	}
}

func TestCalculatePostfix(t *testing.T) {
	cases := []struct {
		name string
		src  string
		r    string
	}{
		{"add", "10 5 +", "15"},
		{"chain", "12 4 + 3 *", "48"},
		{"stacked", "10 5 3 * +", "25"},
		{"num", "42", "42"},
		{"frac", "7 2 /", "3.5"},
		{"neg", "1 4 -", "-3"},
		{"tight", "10 5+ 3*", "45"},
		{"padded", "  6  3 /  ", "2"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := arithmetic.CalculatePostfix(c.src)
			require.NoError(t, err)
			require.Equal(t, c.r, r)
		})
	}
}

func TestCalculateErrors(t *testing.T) {
	cases := []struct {
		name string
		n    arithmetic.Notation
		src  string
	}{
		{"infix-doubled-op", arithmetic.Infix, "10++4*"},
		{"infix-letter", arithmetic.Infix, "A+12"},
		{"infix-unclosed", arithmetic.Infix, "((7+2)*3"},
		{"infix-unclosed-inner", arithmetic.Infix, "1+(2"},
		{"infix-unopened", arithmetic.Infix, "7+2)"},
		{"infix-empty", arithmetic.Infix, ""},
		{"infix-empty-parens", arithmetic.Infix, "()"},
		{"infix-op", arithmetic.Infix, "+"},
		{"infix-trailing-op", arithmetic.Infix, "1+"},
		{"infix-spaces", arithmetic.Infix, "1 + 2"},
		{"infix-div-zero", arithmetic.Infix, "1/0"},
		{"infix-div-zero-computed", arithmetic.Infix, "1/(2-2)"},
		{"postfix-doubled-op", arithmetic.Postfix, "10++4*"},
		{"postfix-letter", arithmetic.Postfix, "A+12"},
		{"postfix-parens", arithmetic.Postfix, "((7+2)*3"},
		{"postfix-empty", arithmetic.Postfix, ""},
		{"postfix-blank", arithmetic.Postfix, "   "},
		{"postfix-no-op", arithmetic.Postfix, "1 2"},
		{"postfix-one-operand", arithmetic.Postfix, "5 +"},
		{"postfix-op-first", arithmetic.Postfix, "+ 1 2"},
		{"postfix-extra-operand", arithmetic.Postfix, "1 2 3 +"},
		{"postfix-div-zero", arithmetic.Postfix, "5 0 /"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := arithmetic.Calculate(c.n, c.src)
			require.Error(t, err)
			require.Empty(t, r)
			var ee *arithmetic.ExpressionError
			require.True(t, errors.As(err, &ee), "want *ExpressionError, got %#v", err)
			require.Equal(t, c.src, ee.Input)
			var ie arithmetic.InputError
			require.True(t, errors.As(err, &ie))
			require.Contains(t, err.Error(), "malformed expression")
		})
	}
}

func TestDivisionByZeroPos(t *testing.T) {
	_, err := arithmetic.CalculateInfix("12/(3-3)")
	var ee *arithmetic.ExpressionError
	require.True(t, errors.As(err, &ee))
	require.Equal(t, 3, ee.Pos())
	require.Contains(t, ee.Msg, "division by zero")
}

func TestCalculateUnknownNotation(t *testing.T) {
	_, err := arithmetic.Calculate(arithmetic.Notation(7), "1+1")
	var ne *arithmetic.NotationError
	require.True(t, errors.As(err, &ne), "want *NotationError, got %#v", err)
	var ie arithmetic.InputError
	require.False(t, errors.As(err, &ie))
}

func TestReduce(t *testing.T) {
	seq, err := arithmetic.ParseInfix("15/3-(2+(6-4))")
	require.NoError(t, err)
	before := append(arithmetic.Sequence(nil), seq...)
	r, err := arithmetic.Reduce(seq)
	require.NoError(t, err)
	require.Equal(t, "1", r)
	require.Equal(t, before, seq, "Reduce modified its argument")

	_, err = arithmetic.Reduce(nil)
	require.Error(t, err)
	_, err = arithmetic.Reduce(arithmetic.Sequence{{Kind: arithmetic.Paren, Text: "("}})
	require.Error(t, err)
}

func TestPrec(t *testing.T) {
	calc := arithmetic.New(arithmetic.Prec(256))
	require.EqualValues(t, 256, calc.Prec())
	r, err := calc.CalculateInfix("123456789012345678901234567890*10")
	require.NoError(t, err)
	require.Equal(t, "1234567890123456789012345678900", r)
	require.EqualValues(t, arithmetic.DefaultPrec, arithmetic.New().Prec())

	// Only quotients with no finite decimal form are rounded.
	coarse := arithmetic.New(arithmetic.Prec(8))
	for _, c := range []struct{ src, r string }{
		{"1/3", "0.333984375"},
		{"1/3*3", "1.001953125"},
		{"7/2", "3.5"},
		{"1/10", "0.1"},
		{"123456789012345678901234567890*10", "1234567890123456789012345678900"},
	} {
		r, err := coarse.CalculateInfix(c.src)
		require.NoError(t, err)
		require.Equal(t, c.r, r, c.src)
	}
	require.Panics(t, func() { arithmetic.Prec(0) })
}

// TestIdempotent checks that repeated calls with the same input give the same
// result.
func TestIdempotent(t *testing.T) {
	calc := arithmetic.New()
	for _, src := range []string{"15/3-(2+(6-4))", "1/3", "10++4*"} {
		r0, err0 := calc.CalculateInfix(src)
		for i := 0; i < 5; i++ {
			r, err := calc.CalculateInfix(src)
			require.Equal(t, r0, r)
			require.Equal(t, err0, err)
		}
	}
}

// TestRoundTrip checks that reducing the plan for an infix expression gives the
// same result as calculating the plan written as postfix text.
func TestRoundTrip(t *testing.T) {
	for _, src := range []string{"10+5", "12-(4*3)", "15/3-(2+(6-4))", "(12+4)*3", "7/2*2-1", "1-2-3*4/5"} {
		t.Run(src, func(t *testing.T) {
			seq, err := arithmetic.ParseInfix(src)
			require.NoError(t, err)
			a, err := arithmetic.Reduce(seq)
			require.NoError(t, err)
			b, err := arithmetic.CalculatePostfix(seq.String())
			require.NoError(t, err)
			require.Equal(t, a, b)
			c, err := arithmetic.CalculateInfix(src)
			require.NoError(t, err)
			require.Equal(t, a, c)
		})
	}
}

func TestConcurrent(t *testing.T) {
	calc := arithmetic.New()
	var wg sync.WaitGroup
	errs := make(chan error, 64)
	for i := 0; i < cap(errs); i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			src := fmt.Sprintf("%d*(%d+1)", i, i)
			r, err := calc.CalculateInfix(src)
			if err != nil {
				errs <- err
				return
			}
			if want := fmt.Sprint(i * (i + 1)); r != want {
				errs <- fmt.Errorf("%s: want %s, got %s", src, want, r)
			}
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}

func Example() {
	for _, src := range []string{"10+5", "15/3-(2+(6-4))", "7/2", "A+12"} {
		r, err := arithmetic.CalculateInfix(src)
		if err != nil {
			fmt.Println(err)
			continue
		}
		fmt.Println(r)
	}
	r, _ := arithmetic.CalculatePostfix("12 4 + 3 *")
	fmt.Println(r)

	// Output:
	// 15
	// 1
	// 3.5
	// malformed expression "A+12": 1: unallowed character 'A'
	// 48
}
