package errors

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/pkg/errors"
)

const pkgPath = "github.com/iov-one/quorum/errors."

// wrappers are the functions of this package that record a stack trace.
// Their frames are left out of printed traces.
var wrappers = map[string]bool{
	pkgPath + "Wrap":        true,
	pkgPath + "Wrapf":       true,
	pkgPath + "Field":       true,
	pkgPath + "AppendField": true,
	pkgPath + "Recover":     true,
}

// stackTrace returns the trace recorded by err or an error it wraps, or nil.
func stackTrace(err error) errors.StackTrace {
	type tracer interface {
		StackTrace() errors.StackTrace
	}
	var st errors.StackTrace
	visit(err, func(cur error) bool {
		t, ok := cur.(tracer)
		if ok {
			st = t.StackTrace()
		}
		return ok
	})
	return st
}

func frameFunc(f errors.Frame) *runtime.Func {
	return runtime.FuncForPC(uintptr(f) - 1)
}

func frameName(f errors.Frame) string {
	if fn := frameFunc(f); fn != nil {
		return fn.Name()
	}
	return "unknown"
}

// callerTrace drops the frames of this package and of the runtime from
// the top of st, and those of the runtime and of tests from its bottom.
func callerTrace(st errors.StackTrace) errors.StackTrace {
	for len(st) > 1 {
		name := frameName(st[0])
		if !wrappers[name] && !strings.HasPrefix(name, "runtime.") {
			break
		}
		st = st[1:]
	}
	for len(st) > 1 {
		name := frameName(st[len(st)-1])
		if !strings.HasPrefix(name, "runtime.") && !strings.HasPrefix(name, "testing.") {
			break
		}
		st = st[:len(st)-1]
	}
	return st
}

// Format prints the message for %s, the message and the place the error
// was created for %v, and the whole stack trace for %+v.
func (e *wrappedError) Format(s fmt.State, verb rune) {
	if verb != 'v' {
		fmt.Fprint(s, e.Error())
		return
	}
	st := callerTrace(stackTrace(e))
	if s.Flag('+') {
		fmt.Fprintf(s, "%+v\n%s", st, e.Error())
		return
	}
	fmt.Fprint(s, e.Error())
	if len(st) == 0 {
		return
	}
	file, line := "unknown", 0
	if fn := frameFunc(st[0]); fn != nil {
		file, line = fn.FileLine(uintptr(st[0]) - 1)
	}
	if i := strings.Index(file, "github.com/"); i >= 0 {
		file = file[i+len("github.com/"):]
	}
	fmt.Fprintf(s, " [%s:%d]", file, line)
}
