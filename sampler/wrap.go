// Package sampler describes texture addressing modes independently of the
// graphics API that realizes them.
package sampler

import (
	"errors"
	"fmt"
	"strings"
)

// WrapMode selects how texture coordinates outside [0, 1] are resolved.
type WrapMode int

const (
	Repeat WrapMode = iota
	MirroredRepeat
	ClampToEdge
	ClampToBorder
	// End marks the end of the range and is never a valid mode.
	End
)

var ErrUnknownWrapMode = errors.New("sampler: unknown wrap mode")

var wrapModeNames = [...]string{
	Repeat:         "repeat",
	MirroredRepeat: "mirrored-repeat",
	ClampToEdge:    "clamp-to-edge",
	ClampToBorder:  "clamp-to-border",
}

// Modes lists every valid wrap mode in order.
func Modes() []WrapMode {
	modes := make([]WrapMode, 0, End)
	for m := Repeat; m < End; m++ {
		modes = append(modes, m)
	}
	return modes
}

// Valid reports whether m is one of the four addressing modes.
func (m WrapMode) Valid() bool {
	return m >= Repeat && m < End
}

// Next returns the following mode, wrapping from ClampToBorder back to
// Repeat. Out of range values restart at Repeat.
func (m WrapMode) Next() WrapMode {
	next := m + 1
	if !next.Valid() {
		return Repeat
	}
	return next
}

func (m WrapMode) String() string {
	if !m.Valid() {
		return fmt.Sprintf("WrapMode(%d)", int(m))
	}
	return wrapModeNames[m]
}

// Parse resolves a mode name as printed by String. Matching ignores case
// and accepts underscores in place of dashes.
func Parse(name string) (WrapMode, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
	for m, n := range wrapModeNames {
		if n == key {
			return WrapMode(m), nil
		}
	}
	return Repeat, fmt.Errorf("%w: %q", ErrUnknownWrapMode, name)
}

// MarshalText implements encoding.TextMarshaler.
func (m WrapMode) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownWrapMode, int(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *WrapMode) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
