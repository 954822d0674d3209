package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandEnv(t *testing.T) {
	t.Setenv("DT_TEST_HOST", "db.internal")

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"set variable", "host: ${DT_TEST_HOST}", "host: db.internal"},
		{"set variable ignores default", "host: ${DT_TEST_HOST:fallback}", "host: db.internal"},
		{"unset with default", "port: ${DT_TEST_UNSET:5432}", "port: 5432"},
		{"unset without default kept", "key: ${DT_TEST_UNSET}", "key: ${DT_TEST_UNSET}"},
		{"no placeholder", "plain: value", "plain: value"},
		{"multiple placeholders", "${DT_TEST_HOST}:${DT_TEST_UNSET:6379}", "db.internal:6379"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, expandEnv(tt.in))
		})
	}
}

func TestExpandEnvEmptyDefault(t *testing.T) {
	// ${VAR:} 形式：空默认值展开为空串
	got := expandEnv("password: ${DT_TEST_UNSET:}")
	assert.Equal(t, "password: ", got)
}
