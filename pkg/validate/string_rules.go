package validate

import (
	"regexp"
	"strings"
)

// NonEmpty accepts strings containing at least one non-whitespace rune.
func NonEmpty() func(string) bool {
	return func(v string) bool {
		return strings.TrimSpace(v) != ""
	}
}

// MinLen accepts strings of at least n runes.
func MinLen(n int) func(string) bool {
	return func(v string) bool {
		return len([]rune(v)) >= n
	}
}

// MaxLen accepts strings of at most n runes.
func MaxLen(n int) func(string) bool {
	return func(v string) bool {
		return len([]rune(v)) <= n
	}
}

// Match accepts strings matching the given pattern.
func Match(re *regexp.Regexp) func(string) bool {
	return func(v string) bool {
		return re.MatchString(v)
	}
}
