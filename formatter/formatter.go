// Package formatter renders stored expressions as calculated values for
// display. Malformed expressions are shown as a placeholder and logged.
package formatter

import (
	"errors"

	"github.com/tliron/commonlog"

	"github.com/zephyrtronium/arithmetic"
)

// DefaultPlaceholder is shown in place of the value of a malformed expression.
const DefaultPlaceholder = "Malformed expression."

// LoggerName is the name of the commonlog logger used when New is given none.
const LoggerName = "arithmetic.formatter"

// Logger receives the details of malformed expressions. commonlog.Logger
// implements it.
type Logger interface {
	Error(message string, keysAndValues ...any)
}

// Settings configures a Formatter.
type Settings struct {
	// Notation is the notation stored expressions are written in.
	Notation arithmetic.Notation
	// Placeholder is the result shown for malformed expressions. If it is
	// empty, DefaultPlaceholder is used.
	Placeholder string
}

// DefaultSettings returns settings for infix expressions with the default
// placeholder.
func DefaultSettings() Settings {
	return Settings{
		Notation:    arithmetic.Infix,
		Placeholder: DefaultPlaceholder,
	}
}

// Element is a rendered expression.
type Element struct {
	// Source is the expression as stored.
	Source string
	// Result is the calculated value, or the placeholder if Err is not nil.
	Result string
	// Err is the reason the expression could not be calculated.
	Err error
}

// Formatter calculates expressions for display.
type Formatter struct {
	calc     *arithmetic.Calculator
	settings Settings
	log      Logger
}

// New creates a formatter. If calc is nil, a calculator with default options
// is used. If log is nil, the formatter logs to the commonlog logger named
// LoggerName.
func New(calc *arithmetic.Calculator, settings Settings, log Logger) *Formatter {
	if calc == nil {
		calc = arithmetic.New()
	}
	if settings.Placeholder == "" {
		settings.Placeholder = DefaultPlaceholder
	}
	if log == nil {
		log = commonlog.GetLogger(LoggerName)
	}
	return &Formatter{calc: calc, settings: settings, log: log}
}

// Settings returns the formatter's settings.
func (f *Formatter) Settings() Settings {
	return f.settings
}

// Format calculates each value. Malformed expressions do not stop formatting;
// their elements hold the placeholder and the error. The returned error is
// non-nil only if the formatter's notation is invalid, in which case no
// elements are returned.
func (f *Formatter) Format(values ...string) ([]Element, error) {
	els := make([]Element, 0, len(values))
	for i, v := range values {
		r, err := f.calc.Calculate(f.settings.Notation, v)
		if err != nil {
			var ee *arithmetic.ExpressionError
			if !errors.As(err, &ee) {
				return nil, err
			}
			f.log.Error(err.Error(), "notation", f.settings.Notation.String(), "delta", i)
			r = f.settings.Placeholder
		}
		els = append(els, Element{Source: v, Result: r, Err: err})
	}
	return els, nil
}
