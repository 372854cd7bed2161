package random

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringUsesAlphabet(t *testing.T) {
	s := New().String(64, Base36)

	assert.Len(t, s, 64)
	for _, c := range s {
		assert.True(t, strings.ContainsRune(Base36, c), "unexpected character %q", c)
	}
}

func TestStringDegenerateInputs(t *testing.T) {
	r := New()

	assert.Empty(t, r.String(0, Base36))
	assert.Empty(t, r.String(5, ""))
	assert.Equal(t, "zzz", r.String(3, "z"))
}
