// Package literal decodes the textual payload of numeric scalars while
// validating the underscore-placement rules shared by integers and floats.
// It operates on raw token bytes and never allocates more than the
// stripped-of-underscores copy it hands to strconv.
package literal

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

var (
	// ErrInvalidUnderscore reports a digit-separator underscore that is not
	// surrounded by a digit on both sides.
	ErrInvalidUnderscore = errors.New("invalid use of _ in number")
	// ErrInvalidUnderscoreHex is ErrInvalidUnderscore for hex/octal/binary literals.
	ErrInvalidUnderscoreHex = errors.New("invalid use of _ in number")
)

// ParseFloat decodes a TOML float literal, including the inf/nan spellings.
func ParseFloat(tok string) (float64, error) {
	switch tok {
	case "inf", "+inf":
		return math.Inf(1), nil
	case "-inf":
		return math.Inf(-1), nil
	case "nan", "+nan", "-nan":
		return math.NaN(), nil
	}

	if err := checkUnderscores(tok, isDigitByte); err != nil {
		return 0, err
	}
	return strconv.ParseFloat(stripUnderscores(tok), 64)
}

// ParseInteger decodes a TOML integer literal in decimal, hex, octal or
// binary form.
func ParseInteger(tok string) (int64, error) {
	neg := false
	unsigned := tok
	if len(unsigned) > 0 && (unsigned[0] == '+' || unsigned[0] == '-') {
		neg = unsigned[0] == '-'
		unsigned = unsigned[1:]
	}

	if len(unsigned) > 2 && unsigned[0] == '0' {
		switch unsigned[1] {
		case 'x':
			return parseIntBase(unsigned[2:], 16, isHexByte, ErrInvalidUnderscoreHex, neg)
		case 'o':
			return parseIntBase(unsigned[2:], 8, isDigitByte, ErrInvalidUnderscoreHex, neg)
		case 'b':
			return parseIntBase(unsigned[2:], 2, isDigitByte, ErrInvalidUnderscoreHex, neg)
		}
	}

	if err := checkUnderscores(tok, isDigitByte); err != nil {
		return 0, err
	}
	return strconv.ParseInt(stripUnderscores(tok), 10, 64)
}

func parseIntBase(digits string, base int, valid func(byte) bool, underscoreErr error, neg bool) (int64, error) {
	if err := checkUnderscores(digits, valid); err != nil {
		return 0, underscoreErr
	}
	v, err := strconv.ParseUint(stripUnderscores(digits), base, 64)
	if err != nil {
		return 0, err
	}
	if neg {
		return -int64(v), nil
	}
	return int64(v), nil
}

// checkUnderscores verifies that every '_' in value has a valid digit
// (per the supplied classifier) immediately before and after it.
func checkUnderscores(value string, valid func(byte) bool) error {
	hasBefore := false
	for i := 0; i < len(value); i++ {
		c := value[i]
		if c == '_' {
			if !hasBefore || i+1 >= len(value) || !valid(value[i+1]) {
				return ErrInvalidUnderscore
			}
			hasBefore = false
			continue
		}
		hasBefore = valid(c)
	}
	return nil
}

func stripUnderscores(value string) string {
	if !strings.ContainsRune(value, '_') {
		return value
	}
	return strings.ReplaceAll(value, "_", "")
}

func isDigitByte(c byte) bool { return c >= '0' && c <= '9' }

func isHexByte(c byte) bool {
	return isDigitByte(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
