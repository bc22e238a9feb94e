package diag

import (
	"errors"
	"fmt"
)

// Error is a coded failure. Op names what was being done ("open", "compile",
// "-A"), Err is the cause and may be nil.
type Error struct {
	Code Code
	Op   string
	Err  error
}

// Errorf builds an Error whose cause is a formatted message.
func Errorf(code Code, op, format string, args ...any) *Error {
	return &Error{Code: code, Op: op, Err: fmt.Errorf(format, args...)}
}

// Wrap attaches code and op to err. A nil err yields nil.
func Wrap(code Code, op string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Code: code, Op: op, Err: err}
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	msg := e.Code.Title()
	if e.Op != "" {
		msg = e.Op + ": " + msg
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Severity is the severity of the error's code.
func (e *Error) Severity() Severity {
	if e == nil {
		return SevInfo
	}
	return e.Code.Severity()
}

// CodeOf returns the code of the first *Error in err's chain, or UnknownCode.
func CodeOf(err error) Code {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return UnknownCode
}

// Is reports whether err carries the given code anywhere in its chain.
func Is(err error, code Code) bool {
	return err != nil && CodeOf(err) == code
}
