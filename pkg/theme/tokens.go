package theme

import (
	"regexp"
	"strconv"

	"github.com/matzehuels/gridframe/pkg/errors"
)

// lengthRegex matches raw CSS lengths accepted as token passthrough,
// e.g. "1.5rem", "24px", "100%".
var lengthRegex = regexp.MustCompile(`^\d+(\.\d+)?(px|rem|em|ch|vw|vh|%)$`)

// maxSizes is the named max-width scale for the layout_max token.
var maxSizes = map[string]string{
	"xs":   "20rem",
	"sm":   "24rem",
	"md":   "28rem",
	"lg":   "32rem",
	"xl":   "36rem",
	"2xl":  "42rem",
	"3xl":  "48rem",
	"4xl":  "56rem",
	"5xl":  "64rem",
	"6xl":  "72rem",
	"7xl":  "80rem",
	"full": "100%",
}

// SpaceSize resolves a gap token to a concrete CSS length. Numeric tokens
// index the spacing scale (one unit = 0.25rem, so "4" is 1rem); raw CSS
// lengths pass through unchanged. Anything else is an INVALID_TOKEN error.
func SpaceSize(token string) (string, error) {
	if err := errors.ValidateTokenName(token); err != nil {
		return "", err
	}
	if n, err := strconv.ParseFloat(token, 64); err == nil {
		if n < 0 {
			return "", errors.New(errors.ErrCodeInvalidToken, "gap token cannot be negative: %q", token)
		}
		if n == 0 {
			return "0", nil
		}
		return formatRem(n * 0.25), nil
	}
	if lengthRegex.MatchString(token) {
		return token, nil
	}
	return "", errors.New(errors.ErrCodeInvalidToken, "unknown gap token %q", token)
}

// MaxSize resolves a layout_max token to a concrete CSS length. Named
// scale entries ("sm" through "7xl", "full") and raw CSS lengths are
// accepted.
func MaxSize(token string) (string, error) {
	if err := errors.ValidateTokenName(token); err != nil {
		return "", err
	}
	if size, ok := maxSizes[token]; ok {
		return size, nil
	}
	if lengthRegex.MatchString(token) {
		return token, nil
	}
	return "", errors.New(errors.ErrCodeInvalidToken, "unknown layout_max token %q", token)
}

// formatRem renders a rem length without trailing zeros ("1rem", "0.25rem").
func formatRem(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "rem"
}
