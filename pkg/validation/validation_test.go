package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	assert.True(t, ValidateEmail("alice@x.com"))
	assert.True(t, ValidateEmail("  alice@x.com  "))
	assert.False(t, ValidateEmail(""))
	assert.False(t, ValidateEmail("alice"))
	assert.False(t, ValidateEmail("alice@x"))
	assert.False(t, ValidateEmail(strings.Repeat("a", 200)+"@x.com"))
}

func TestValidateUsername(t *testing.T) {
	assert.True(t, ValidateUsername("alice"))
	assert.False(t, ValidateUsername("al"))
	assert.False(t, ValidateUsername(""))
	assert.False(t, ValidateUsername(strings.Repeat("a", 51)))
}

func TestValidatePassword(t *testing.T) {
	assert.True(t, ValidatePassword("secret"))
	assert.False(t, ValidatePassword("short"))
	assert.False(t, ValidatePassword(strings.Repeat("x", 101)))
}

func TestValidateCoordinates(t *testing.T) {
	assert.True(t, ValidateCoordinates(23.81, 90.41))
	assert.True(t, ValidateCoordinates(-90, 180))
	assert.False(t, ValidateCoordinates(91, 0))
	assert.False(t, ValidateCoordinates(0, -181))
}
