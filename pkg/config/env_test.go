package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnvString(t *testing.T) {
	t.Setenv("TEST_STR", "value")
	assert.Equal(t, "value", GetEnvString("TEST_STR", "default"))
	assert.Equal(t, "default", GetEnvString("TEST_STR_UNSET", "default"))
}

func TestGetEnvInt(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  int
	}{
		{name: "valid", value: "42", want: 42},
		{name: "unset", value: "", want: 7},
		{name: "trailing garbage", value: "12abc", want: 7},
		{name: "float", value: "1.5", want: 7},
		{name: "surrounding spaces", value: " 5 ", want: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_INT", tt.value)
			assert.Equal(t, tt.want, GetEnvInt("TEST_INT", 7))
		})
	}
}

func TestGetEnvInt64(t *testing.T) {
	t.Setenv("TEST_INT64", "9223372036854775807")
	assert.Equal(t, int64(9223372036854775807), GetEnvInt64("TEST_INT64", 1))

	t.Setenv("TEST_INT64", "9223372036854775808")
	assert.Equal(t, int64(1), GetEnvInt64("TEST_INT64", 1))
}

func TestGetEnvFloat(t *testing.T) {
	t.Setenv("TEST_FLOAT", "0.25")
	assert.Equal(t, 0.25, GetEnvFloat("TEST_FLOAT", 1.0))

	t.Setenv("TEST_FLOAT", "quarter")
	assert.Equal(t, 1.0, GetEnvFloat("TEST_FLOAT", 1.0))
}

func TestGetEnvDuration(t *testing.T) {
	t.Setenv("TEST_DUR", "1m30s")
	assert.Equal(t, 90*time.Second, GetEnvDuration("TEST_DUR", time.Second))

	t.Setenv("TEST_DUR", "10")
	assert.Equal(t, time.Second, GetEnvDuration("TEST_DUR", time.Second))
}

func TestValidators(t *testing.T) {
	assert.NoError(t, ValidatePositiveDuration(time.Second))
	assert.Error(t, ValidatePositiveDuration(0))
	assert.NoError(t, ValidateNonNegativeDuration(0))
	assert.Error(t, ValidateNonNegativeDuration(-time.Second))
	assert.NoError(t, ValidateRange(0.5, 0, 1))
	assert.Error(t, ValidateRange(2, 0, 1))
	assert.Error(t, ValidateRange(-1, 0, 10))
}
