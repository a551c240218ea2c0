package validate

import (
	"strings"

	"github.com/google/uuid"
)

// UUID accepts strings in standard UUID format, with pre-validation to
// avoid expensive parsing.
func UUID() func(string) bool {
	return func(v string) bool {
		if strings.TrimSpace(v) == "" {
			return false
		}

		// Fast rejection: check length and hyphen positions before parsing
		if len(v) != 36 {
			return false
		}
		if v[8] != '-' || v[13] != '-' || v[18] != '-' || v[23] != '-' {
			return false
		}

		_, err := uuid.Parse(v)
		return err == nil
	}
}
