package render

import "fmt"

// Code classifies a render error
type Code string

const (
	// CodeStructuralPrecondition is returned when an operation needs a row and the builder has none
	CodeStructuralPrecondition Code = "structural_precondition"
	// CodeTypeMismatch is returned when a postfix modifier finds a non-item at the end of the active row
	CodeTypeMismatch Code = "type_mismatch"
	// CodeMissingNode is returned when a postfix modifier runs on an empty active row
	CodeMissingNode Code = "missing_node"
	// CodeTreeShapeInvalid is returned by effect accessors on a malformed tree
	CodeTreeShapeInvalid Code = "tree_shape_invalid"
	// CodeNodeRejected is returned when a builder does not accept a node kind
	CodeNodeRejected Code = "node_rejected"
)

// Error is a builder or tree error
type Error struct {
	Code   Code
	Op     string // Builder operation or accessor name
	Reason string // Finer classification within Code
	Detail string
}

// Error implements the error interface
func (e *Error) Error() string {
	msg := string(e.Code)
	if e.Reason != "" {
		msg = e.Reason
	}
	if e.Op != "" {
		msg = fmt.Sprintf("%s: %s", e.Op, msg)
	}
	if e.Detail != "" {
		msg = fmt.Sprintf("%s (%s)", msg, e.Detail)
	}
	return msg
}

// Is matches by Code, and by Reason when the target sets one
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if e.Code != t.Code {
		return false
	}
	return t.Reason == "" || t.Reason == e.Reason
}

var (
	ErrStructuralPrecondition = &Error{Code: CodeStructuralPrecondition}
	ErrTypeMismatch           = &Error{Code: CodeTypeMismatch}
	ErrMissingNode            = &Error{Code: CodeMissingNode}
	ErrTreeShapeInvalid       = &Error{Code: CodeTreeShapeInvalid}
	ErrNodeRejected           = &Error{Code: CodeNodeRejected}

	// Reasons for CodeTreeShapeInvalid
	ErrNotEffect          = &Error{Code: CodeTreeShapeInvalid, Reason: "not an effect tree"}
	ErrEffectRowCount     = &Error{Code: CodeTreeShapeInvalid, Reason: "effect must have 3 rows: cause, delimiter and effect"}
	ErrDelimiterLength    = &Error{Code: CodeTreeShapeInvalid, Reason: "effect delimiter row must contain exactly 1 node"}
	ErrDelimiterNotSymbol = &Error{Code: CodeTreeShapeInvalid, Reason: "effect delimiter must be a symbol"}
)

func newError(code Code, op, reason, detail string) *Error {
	return &Error{Code: code, Op: op, Reason: reason, Detail: detail}
}

func shapeError(op string, reason *Error, detail string) *Error {
	return newError(CodeTreeShapeInvalid, op, reason.Reason, detail)
}
