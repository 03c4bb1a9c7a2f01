package presets

import (
	"errors"
	"fmt"
)

// ErrGrammarMismatch is matched by every GrammarMismatchError.
var ErrGrammarMismatch = errors.New("grammar mismatch")

// GrammarMismatchError reports a line that carries a recognized directive
// prefix but does not match the directive's argument pattern.
type GrammarMismatchError struct {
	Line      int
	Directive string
	Text      string
}

func (e *GrammarMismatchError) Error() string {
	return fmt.Sprintf("line %d: %s: expected %s(<A>, <B>), got %q", e.Line, ErrGrammarMismatch, e.Directive, e.Text)
}

// Is makes errors.Is(err, ErrGrammarMismatch) succeed.
func (e *GrammarMismatchError) Is(target error) bool {
	return target == ErrGrammarMismatch
}
