package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeStripsTags(t *testing.T) {
	assert.Equal(t, "Hello", Sanitize("<b>Hello</b>"))
	assert.Equal(t, "alert('x')", Sanitize("<script>alert('x')</script>"))
	assert.Equal(t, "Jane Doe", Sanitize("  Jane Doe  "))
	assert.Equal(t, "", Sanitize("<img src=x onerror=alert(1)>"))
	assert.Equal(t, "plain text", Sanitize("plain text"))
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("jane@example.com"))
	assert.True(t, IsValidEmail("a.b+c@sub.domain.org"))

	assert.False(t, IsValidEmail(""))
	assert.False(t, IsValidEmail("not-an-email"))
	assert.False(t, IsValidEmail("missing@domain"))
	assert.False(t, IsValidEmail("spaces in@example.com"))

	long := make([]byte, 256)
	for i := range long {
		long[i] = 'a'
	}
	assert.False(t, IsValidEmail(string(long)+"@example.com"))
}
