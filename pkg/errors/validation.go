package errors

import (
	"regexp"
	"unicode"
)

// identRegex matches breakpoint and region identifiers: a lowercase
// alphanumeric name that may contain interior hyphens (e.g. "base", "2xl",
// "sidebar-nav").
var identRegex = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// lineNameRegex matches grid line names as they appear in templates and
// span declarations (e.g. "full-start", "content-2", "content-end").
var lineNameRegex = regexp.MustCompile(`^[a-z]+(-[a-z0-9]+)*$`)

// ValidateBreakpointName validates a breakpoint label from a theme file.
func ValidateBreakpointName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidBreakpoint, "breakpoint name cannot be empty")
	}
	if !identRegex.MatchString(name) {
		return New(ErrCodeInvalidBreakpoint, "invalid breakpoint name: %q", name)
	}
	return nil
}

// ValidateRegionName validates a layout region name from a theme file.
// Region names become CSS class suffixes, so they are restricted to
// identifier characters.
func ValidateRegionName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidRegion, "region name cannot be empty")
	}
	if len(name) > 64 {
		return New(ErrCodeInvalidRegion, "region name too long (max 64 characters)")
	}
	if !identRegex.MatchString(name) {
		return New(ErrCodeInvalidRegion, "invalid region name: %q", name)
	}
	return nil
}

// ValidateLineName validates a grid line name declared in a span.
// Existence in the template for a given breakpoint is checked lazily at
// resolution time; this only rejects names that could never be valid.
func ValidateLineName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidConfig, "span line name cannot be empty")
	}
	if !lineNameRegex.MatchString(name) {
		return New(ErrCodeInvalidConfig, "invalid span line name: %q", name)
	}
	return nil
}

// ValidateTokenName validates a size token before resolution. Tokens are
// either scale names ("4", "7xl") or raw CSS lengths ("1.5rem"); this only
// rejects obviously unusable input such as control characters, which would
// otherwise be templated verbatim into CSS output.
func ValidateTokenName(token string) error {
	if token == "" {
		return New(ErrCodeInvalidToken, "size token cannot be empty")
	}
	if len(token) > 64 {
		return New(ErrCodeInvalidToken, "size token too long (max 64 characters)")
	}
	for _, r := range token {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return New(ErrCodeInvalidToken, "size token contains invalid characters: %q", token)
		}
	}
	return nil
}
