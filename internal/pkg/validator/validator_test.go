package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("alice@example.com"))
	assert.True(t, IsValidEmail("a.b+tag@sub.domain.co"))

	assert.False(t, IsValidEmail(""))
	assert.False(t, IsValidEmail("   "))
	assert.False(t, IsValidEmail("not-an-email"))
	assert.False(t, IsValidEmail("missing@tld"))
	assert.False(t, IsValidEmail("@example.com"))
}

func TestIsValidPhone(t *testing.T) {
	assert.True(t, IsValidPhone("+14155552671"))
	assert.True(t, IsValidPhone("4155552671"))

	assert.False(t, IsValidPhone(""))
	assert.False(t, IsValidPhone("abc"))
	assert.False(t, IsValidPhone("0123"))
}

func TestHasWhitespace(t *testing.T) {
	assert.True(t, HasWhitespace("user name"))
	assert.True(t, HasWhitespace("tab\tname"))
	assert.True(t, HasWhitespace("line\nname"))

	assert.False(t, HasWhitespace("username"))
	assert.False(t, HasWhitespace("user_name-42"))
}
