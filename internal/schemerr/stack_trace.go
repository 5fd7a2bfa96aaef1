package schemerr

import (
	"strings"

	"github.com/gophersource/schemer/internal/token"
)

// StackFrame is a single frame in the active chain of procedure
// applications, captured on a *SchemeError when it is raised from deep
// inside apply. Grounded on internal/errors's StackFrame, which pairs a
// function name with an optional source position.
type StackFrame struct {
	ProcName string
	Pos      *token.Position
}

func (sf StackFrame) String() string {
	if sf.Pos == nil {
		return sf.ProcName
	}
	return sf.ProcName + " at " + sf.Pos.String()
}

// StackTrace is an ordered call stack, newest frame first: frames are
// pushed as an error unwinds outward from where it was raised. String
// prints them in that order, the usual top-down stack trace convention.
type StackTrace []StackFrame

func (st StackTrace) String() string {
	if len(st) == 0 {
		return ""
	}
	var sb strings.Builder
	for i := range st {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(st[i].String())
	}
	return sb.String()
}

// Push returns a new StackTrace with frame appended. StackTrace values are
// never mutated in place: they are threaded through the evaluator's
// recursion and each call to apply captures its own frame, so sharing the
// backing array would let an unrelated call corrupt a sibling's trace.
func (st StackTrace) Push(frame StackFrame) StackTrace {
	cp := make(StackTrace, len(st), len(st)+1)
	copy(cp, st)
	return append(cp, frame)
}
