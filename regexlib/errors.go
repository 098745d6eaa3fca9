package regexlib

import "fmt"

// SyntaxError reports a malformed pattern. Pos is the byte offset of the
// offending character (or of the construct that was left open).
type SyntaxError struct {
	Pos int
	Msg string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at %d: %s", e.Pos, e.Msg)
}

func syntaxErr(pos int, format string, args ...interface{}) error {
	return &SyntaxError{Pos: pos, Msg: fmt.Sprintf(format, args...)}
}
