package smack

import (
	"bytes"
	"errors"
	"unicode/utf8"
)

var (
	// ErrInvalidUTF8 reports a source file that is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("invalid utf-8 input")
	// ErrBinaryInput reports a source file that appears to be binary.
	ErrBinaryInput = errors.New("binary input detected")
)

const (
	minBinarySample = 64
	maxControlPct   = 2
)

// ValidateInput returns an error if src is not valid UTF-8 or looks binary:
// it contains NUL, or at least maxControlPct percent of a sample of at least
// minBinarySample bytes are control characters other than tab, CR and LF.
func ValidateInput(src []byte) error {
	if !utf8.Valid(src) {
		return ErrInvalidUTF8
	}
	if bytes.IndexByte(src, 0x00) >= 0 {
		return ErrBinaryInput
	}
	control := 0
	for _, b := range src {
		if isControlByte(b) {
			control++
		}
	}
	if len(src) >= minBinarySample && control*100 >= len(src)*maxControlPct {
		return ErrBinaryInput
	}
	return nil
}

func isControlByte(b byte) bool {
	switch {
	case b == '\t' || b == '\n' || b == '\r':
		return false
	case b == 0x0B || b == 0x0C:
		return false
	case b < 0x20 || b == 0x7F:
		return true
	default:
		return false
	}
}
