package customer

import (
	"math/rand/v2"
	"strings"
)

const (
	// DefaultCodePrefix is the label code prefix used when none is supplied.
	DefaultCodePrefix = "FLR"
	// defaultCodeLength is the number of random characters after the prefix.
	defaultCodeLength = 4

	codeAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// NewRandomCode generates a short human-memorable label code, e.g. "FLR7K2Q".
// The code is random, not guaranteed unique; uniqueness is enforced by the
// customer repository on insert.
func NewRandomCode(prefix string) string {
	if prefix == "" {
		prefix = DefaultCodePrefix
	}

	var b strings.Builder
	b.WriteString(prefix)
	for range defaultCodeLength {
		b.WriteByte(codeAlphabet[rand.IntN(len(codeAlphabet))])
	}
	return b.String()
}
