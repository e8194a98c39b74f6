package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	assert.True(t, ValidateEmail("ana@example.com"))
	assert.True(t, ValidateEmail("ana.maria+fin@mail.example.org"))
	assert.False(t, ValidateEmail("ana"))
	assert.False(t, ValidateEmail("ana@example"))
	assert.False(t, ValidateEmail("@example.com"))
	assert.False(t, ValidateEmail(""))
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "ana@example.com", NormalizeEmail("  Ana@Example.COM "))
}

func TestValidatePassword(t *testing.T) {
	assert.True(t, ValidatePassword("test123456"))
	assert.False(t, ValidatePassword("12345"))
}

func TestValidateDate(t *testing.T) {
	for _, d := range []string{
		"2025-03-01",
		"2025-03-01T10:00",
		"2025-03-01T10:00:00",
		"2025-03-01T10:00:00.123456",
		"2025-03-01T10:00:00Z",
		"2025-03-01T10:00:00.123456+00:00",
		"2025-03-01T10:00:00-03:00",
	} {
		assert.True(t, ValidateDate(d), d)
	}
	for _, d := range []string{"", "yesterday", "2025-13-01", "01/03/2025", "2025-03"} {
		assert.False(t, ValidateDate(d), d)
	}
}

func TestFormatDate(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)
	got := FormatDate(time.Date(2025, 3, 1, 21, 30, 0, 0, loc))
	assert.Equal(t, "2025-03-02T00:30:00.000000Z", got)
	assert.True(t, ValidateDate(got))
}
