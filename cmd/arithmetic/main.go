package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"github.com/zephyrtronium/arithmetic"
	"github.com/zephyrtronium/arithmetic/formatter"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type options struct {
	inname      string
	notation    arithmetic.Notation
	placeholder string
	prec        uint
	lines       bool
	echo        bool
	verbose     int
}

func newRootCmd() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:   "arithmetic [expression...]",
		Short: "Calculate infix or postfix arithmetic expressions",
		Long: `Calculate arithmetic expressions over non-negative integers.

Expressions are taken from the arguments, or from the input file (default
stdin if no arguments are given). Malformed expressions print the placeholder
and their details are logged.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			commonlog.Configure(opts.verbose, nil)
			srcs, err := inputs(cmd.InOrStdin(), opts.inname, args, opts.lines)
			if err != nil {
				return err
			}
			return run(cmd.OutOrStdout(), srcs, &opts)
		},
	}
	cmd.Flags().StringVar(&opts.inname, "in", "", "input file (default stdin if no args given)")
	cmd.Flags().VarP(&opts.notation, "notation", "N", "notation of expressions, infix or postfix")
	cmd.Flags().StringVar(&opts.placeholder, "placeholder", formatter.DefaultPlaceholder, "result shown for malformed expressions")
	cmd.Flags().UintVarP(&opts.prec, "prec", "p", arithmetic.DefaultPrec, "precision in bits of quotients with no finite decimal form")
	cmd.Flags().BoolVarP(&opts.lines, "lines", "n", false, "parse separate input lines as separate expressions")
	cmd.Flags().BoolVar(&opts.echo, "echo", false, "print postfix plans")
	cmd.Flags().CountVarP(&opts.verbose, "verbose", "v", "log verbosity (repeat for more)")
	return cmd
}

func run(w io.Writer, srcs []string, opts *options) error {
	if opts.prec == 0 {
		return fmt.Errorf("precision (%d) must be positive", opts.prec)
	}
	calc := arithmetic.New(arithmetic.Prec(opts.prec))
	f := formatter.New(calc, formatter.Settings{Notation: opts.notation, Placeholder: opts.placeholder}, nil)
	els, err := f.Format(srcs...)
	if err != nil {
		return fmt.Errorf("format: %w", err)
	}
	bad := 0
	for _, el := range els {
		if el.Err != nil {
			bad++
		}
		if opts.echo {
			// Malformed expressions may still have a plan.
			if seq, err := arithmetic.Parse(opts.notation, el.Source); err == nil {
				fmt.Fprintf(w, "%v : ", seq)
			}
		}
		fmt.Fprintln(w, el.Result)
	}
	if bad > 0 {
		return fmt.Errorf("%d of %d expressions malformed", bad, len(els))
	}
	return nil
}

// inputs collects expressions from args, or from the named file or stdin.
func inputs(stdin io.Reader, inname string, args []string, lines bool) ([]string, error) {
	var srcs []string
	in, err := infile(stdin, inname, len(args) == 0)
	if err != nil {
		return nil, err
	}
	if in != nil {
		if f, ok := in.(*os.File); ok && f != os.Stdin {
			defer f.Close()
		}
		s, err := read(in, lines)
		if err != nil {
			return nil, fmt.Errorf("read input: %w", err)
		}
		srcs = append(srcs, s...)
	}
	return append(srcs, args...), nil
}

func infile(stdin io.Reader, inname string, std bool) (io.Reader, error) {
	switch {
	case inname != "" && inname != "-":
		f, err := os.Open(inname)
		if err != nil {
			return nil, fmt.Errorf("open input: %w", err)
		}
		return f, nil
	case inname == "-", std:
		return stdin, nil
	}
	return nil, nil
}

// read reads the whole input as one expression, or each non-empty line as an
// expression if lines is true.
func read(in io.Reader, lines bool) ([]string, error) {
	if !lines {
		b, err := io.ReadAll(in)
		if err != nil {
			return nil, err
		}
		return []string{strings.TrimRight(string(b), "\r\n")}, nil
	}
	var srcs []string
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		if sc.Text() == "" {
			continue
		}
		srcs = append(srcs, sc.Text())
	}
	return srcs, sc.Err()
}
