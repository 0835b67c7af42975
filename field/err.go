package field

import (
	"errors"

	"github.com/ezrec/bef93/translate"
)

var f = translate.From

var (
	// Load errors
	ErrEncoding   = errors.New(f("encoding invalid"))
	ErrFieldEmpty = errors.New(f("field empty"))

	// Template errors
	ErrEquateSyntax     = errors.New(f(".equ syntax"))
	ErrEquateDuplicate  = errors.New(f(".equ duplicated"))
	ErrDirectiveInvalid = errors.New(f("directive invalid"))
)

// ErrSyntax is a template syntax error, annotated with its location.
type ErrSyntax struct {
	LineNo int    // Line number of the error
	Line   string // Contents of the line
	Err    error  // Underlying error
}

func (es *ErrSyntax) Error() string {
	return f("line %d '%v' %v", es.LineNo, es.Line, es.Err)
}

func (es *ErrSyntax) Unwrap() error {
	return es.Err
}

// ErrParseExpression is an invalid $() expression.
type ErrParseExpression string

func (ep ErrParseExpression) Error() string {
	return f("$(%v) is not a valid integer expression", string(ep))
}

func (ep ErrParseExpression) Is(err error) (ok bool) {
	_, ok = err.(ErrParseExpression)
	return
}

// ErrParseNumber is an equate value that is not a number.
type ErrParseNumber string

func (ep ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(ep))
}

func (ep ErrParseNumber) Is(err error) (ok bool) {
	_, ok = err.(ErrParseNumber)
	return
}
