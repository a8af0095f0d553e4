package cli

import (
	"errors"

	"github.com/preston-bernstein/mlb-lineups/internal/providers"
)

// UserMessage turns a lookup error into the line printed on stderr.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var unavailable *providers.ProviderUnavailableError
	if errors.As(err, &unavailable) {
		return unavailable.Error() + "; please try again later"
	}
	return err.Error()
}
