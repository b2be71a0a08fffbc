package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsLeadByte(t *testing.T) {
	assert.False(t, IsLeadByte(0x7F))
	assert.False(t, IsLeadByte(0xA0))
	assert.True(t, IsLeadByte(0xA1))
	assert.True(t, IsLeadByte(0xF9))
}

func TestIsIdeographLead(t *testing.T) {
	assert.False(t, IsIdeographLead(0xA1))
	assert.False(t, IsIdeographLead(0xA3))
	assert.True(t, IsIdeographLead(0xA4))
	assert.True(t, IsIdeographLead(0xC6))
}

func TestIsAlnum(t *testing.T) {
	for _, b := range []byte("azAZ09") {
		assert.True(t, IsAlnum(b), "byte %q", b)
	}
	for _, b := range []byte(" :@[`{/") {
		assert.False(t, IsAlnum(b), "byte %q", b)
	}
}

func TestToLower(t *testing.T) {
	assert.Equal(t, byte('a'), ToLower('A'))
	assert.Equal(t, byte('z'), ToLower('Z'))
	assert.Equal(t, byte('q'), ToLower('q'))
	assert.Equal(t, byte('7'), ToLower('7'))
}
