package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestToInt(t *testing.T) {
	assert.Equal(t, 42, ToInt(42))
	assert.Equal(t, 42, ToInt(int64(42)))
	assert.Equal(t, 42, ToInt(42.9))
	assert.Equal(t, 42, ToInt("42"))
	assert.Equal(t, 0, ToInt("abc"))
	assert.Equal(t, 42, ToInt([]byte("42")))
}

func TestToString(t *testing.T) {
	assert.Equal(t, "hello", ToString("hello"))
	assert.Equal(t, "hello", ToString([]byte("hello")))
	assert.Equal(t, "", ToString(nil))
	assert.Equal(t, "42", ToString(42))
	assert.Equal(t, "true", ToString(true))
}

func TestToBool(t *testing.T) {
	assert.True(t, ToBool(true))
	assert.True(t, ToBool(1))
	assert.True(t, ToBool(float64(1)))
	assert.True(t, ToBool("true"))
	assert.True(t, ToBool("TRUE"))
	assert.True(t, ToBool("1"))
	assert.False(t, ToBool(false))
	assert.False(t, ToBool(0))
	assert.False(t, ToBool("no"))
	assert.False(t, ToBool(nil))
	assert.False(t, ToBool(map[string]any{}))
}

func TestToTime(t *testing.T) {
	want := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	t.Run("RFC3339 string", func(t *testing.T) {
		got, ok := ToTime("2024-05-01T12:00:00Z")
		assert.True(t, ok)
		assert.Equal(t, want, got)
	})

	t.Run("RFC3339 with offset normalizes to UTC", func(t *testing.T) {
		got, ok := ToTime("2024-05-01T14:00:00+02:00")
		assert.True(t, ok)
		assert.Equal(t, want, got)
	})

	t.Run("epoch millis as JSON number", func(t *testing.T) {
		got, ok := ToTime(float64(1714564800000))
		assert.True(t, ok)
		assert.Equal(t, want, got)
	})

	t.Run("failures", func(t *testing.T) {
		for _, v := range []any{"", "yesterday", nil, true, (*time.Time)(nil)} {
			_, ok := ToTime(v)
			assert.False(t, ok, "input %v", v)
		}
	})
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", Truncate("abc", 10))
	assert.Equal(t, "ab", Truncate("abc", 2))
	assert.Equal(t, "abc", Truncate("abc", 0))
	assert.Equal(t, "", Truncate("", 5))
}
