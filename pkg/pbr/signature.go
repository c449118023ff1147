package pbr

import (
	"fmt"
	"strconv"
	"strings"
)

// Signature is an opaque 32-bit type identifier agreed upon with the backend.
// Known values are four-character codes packed little-endian.
type Signature uint32

// Sig32 packs four bytes into a Signature, first byte lowest.
func Sig32(a, b, c, d byte) Signature {
	return Signature(uint32(a) | uint32(b)<<8 | uint32(c)<<16 | uint32(d)<<24)
}

const (
	// PassThroughSignature identifies raw hardware command traffic
	PassThroughSignature = Signature(uint32('P') | uint32('A')<<8 | uint32('S')<<16 | uint32('T')<<24)

	// CLISignature identifies tags recorded for CLI invocations
	CLISignature = Signature(uint32('D') | uint32('C')<<8 | uint32('L')<<16 | uint32('I')<<24)
)

// String renders the signature as a four-character code when printable,
// otherwise as hex. Codes that would read back as a hex prefix render as hex.
func (s Signature) String() string {
	b := [4]byte{byte(s), byte(s >> 8), byte(s >> 16), byte(s >> 24)}
	if b[0] == '0' && (b[1] == 'x' || b[1] == 'X') {
		return fmt.Sprintf("0x%08x", uint32(s))
	}
	for _, c := range b {
		if c < 0x20 || c > 0x7e {
			return fmt.Sprintf("0x%08x", uint32(s))
		}
	}
	return string(b[:])
}

// MarshalText implements encoding.TextMarshaler.
func (s Signature) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText accepts a four-character code or a 0x-prefixed hex value.
func (s *Signature) UnmarshalText(text []byte) error {
	parsed, err := ParseSignature(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// ParseSignature parses a four-character code or a 0x-prefixed hex value.
func ParseSignature(text string) (Signature, error) {
	if strings.HasPrefix(text, "0x") || strings.HasPrefix(text, "0X") {
		v, err := strconv.ParseUint(text[2:], 16, 32)
		if err != nil {
			return 0, fmt.Errorf("%w: signature %q: %v", ErrInvalidArgument, text, err)
		}
		return Signature(v), nil
	}
	if len(text) != 4 {
		return 0, fmt.Errorf("%w: signature %q must be four characters", ErrInvalidArgument, text)
	}
	return Sig32(text[0], text[1], text[2], text[3]), nil
}
