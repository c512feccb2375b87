package grammar

import (
	"fmt"
	"strings"

	"github.com/devg1120/mib-parser/internal/types"
)

// SyntaxError reports the first grammar mismatch: the offending span
// and the rule or token shapes that were expected there.
type SyntaxError struct {
	Span     types.Span
	Expected []string
	Found    string
}

func (e *SyntaxError) Error() string {
	if len(e.Expected) == 0 {
		return fmt.Sprintf("syntax error at offset %d: %s", e.Span.Start, e.Found)
	}
	return fmt.Sprintf("syntax error at offset %d: expected %s, found %s",
		e.Span.Start, strings.Join(e.Expected, " or "), e.Found)
}
