package infra

import (
	"fmt"
	"io"
	"path"
	"runtime"
	"strconv"
)

// References:
// https://github.com/pkg/errors/blob/master/stack.go

type Frame uintptr

func (frame Frame) pc() uintptr {
	return uintptr(frame) - 1
}

func (frame Frame) file() string {
	pc := frame.pc()
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return "unknownFile"
	}
	f, _ := fn.FileLine(pc)
	return f
}

func (frame Frame) line() int {
	pc := frame.pc()
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return 0
	}
	_, l := fn.FileLine(pc)
	return l
}

func (frame Frame) name() string {
	pc := frame.pc()
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return "unknownFunc"
	}
	return fn.Name()
}

// Format characters:
// %s - source file
// %d - source line
// %v - verbose, equivalent to %s:%d
// %+s - full path, the root path is relative to the compile time GOPATH
// separated by \n\t (<function-name>\n\t<path>)
// %+v - equivalent to %+s:%d
func (frame Frame) Format(s fmt.State, verb rune) {
	switch verb {
	case 's':
		if s.Flag('+') {
			_, _ = io.WriteString(s, frame.name())
			_, _ = io.WriteString(s, "\n\t")
			_, _ = io.WriteString(s, frame.file())
		} else {
			_, _ = io.WriteString(s, path.Base(frame.file()))
		}
	case 'd':
		_, _ = io.WriteString(s, strconv.Itoa(frame.line()))
	case 'v':
		frame.Format(s, 's')
		_, _ = io.WriteString(s, ":")
		frame.Format(s, 'd')
	}
}

type stackTrace []Frame

func (st stackTrace) Format(s fmt.State, verb rune) {
	if verb != 'v' || !s.Flag('+') {
		return
	}
	for _, frame := range st {
		_, _ = io.WriteString(s, "\n")
		frame.Format(s, verb)
	}
}

func callers(skip int) stackTrace {
	var pcs [32]uintptr
	n := runtime.Callers(skip, pcs[:])
	st := make(stackTrace, 0, n)
	for i := 0; i < n; i++ {
		st = append(st, Frame(pcs[i]))
	}
	return st
}

// errorStack decorates an error with the call stack captured at wrap
// time. The wrapped error stays reachable through Unwrap, so errors.Is
// and errors.As still match the sentinel underneath.
type errorStack struct {
	err error
	st  stackTrace
}

func (e *errorStack) Error() string {
	return e.err.Error()
}

func (e *errorStack) Unwrap() error {
	return e.err
}

func (e *errorStack) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		_, _ = io.WriteString(s, e.err.Error())
		if s.Flag('+') {
			e.st.Format(s, verb)
		}
	case 's':
		_, _ = io.WriteString(s, e.err.Error())
	}
}

func WrapErrorStack(err error) error {
	if err == nil {
		return nil
	}
	return &errorStack{
		err: err,
		st:  callers(3),
	}
}

func WrapErrorStackWithMessage(err error, message string) error {
	if err == nil {
		return nil
	}
	return &errorStack{
		err: fmt.Errorf("%s: %w", message, err),
		st:  callers(3),
	}
}
