package teams

import (
	"fmt"
	"strings"
)

// UnknownTeamError reports an abbreviation outside the fixed team set.
type UnknownTeamError struct {
	Input      string
	Suggestion string
	Valid      []string
}

func (e *UnknownTeamError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "invalid team abbreviation %q", e.Input)
	if e.Suggestion != "" {
		fmt.Fprintf(&b, " (did you mean %q?)", e.Suggestion)
	}
	if len(e.Valid) > 0 {
		b.WriteString("; valid options are: ")
		b.WriteString(strings.Join(e.Valid, ", "))
	}
	return b.String()
}
