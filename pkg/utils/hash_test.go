package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashString(t *testing.T) {
	// sha256("abc")
	assert.Equal(t, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad", HashString("abc"))
}

func TestEmailFingerprint(t *testing.T) {
	a := EmailFingerprint("Joe@Example.com ")
	b := EmailFingerprint("joe@example.com")

	assert.Equal(t, a, b)
	assert.Len(t, a, 12)
	assert.NotContains(t, a, "joe")
	assert.NotEqual(t, a, EmailFingerprint("jane@example.com"))
}
