package strongcheck

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ConfigError
		want string
	}{
		{
			name: "no problems",
			err:  &ConfigError{Path: "strongcheck.yaml"},
			want: "strongcheck config strongcheck.yaml: no problems",
		},
		{
			name: "one problem",
			err: &ConfigError{Path: "strongcheck.yaml", Problems: []Problem{
				{Path: "allow[0].from", Code: ProblemRequired, Message: "from pattern is required"},
			}},
			want: "strongcheck config strongcheck.yaml: 1 problem\n" +
				"  - allow[0].from: required (from pattern is required)",
		},
		{
			name: "several problems",
			err: &ConfigError{Path: "c.toml", Problems: []Problem{
				{Path: "allow[0].to", Code: ProblemInvalidPattern, Message: `malformed pattern "a.["`},
				{Path: "settings.exclude_paths[1]", Code: ProblemEmpty, Message: "path must not be empty"},
			}},
			want: "strongcheck config c.toml: 2 problems\n" +
				"  - allow[0].to: invalid_pattern (malformed pattern \"a.[\")\n" +
				"  - settings.exclude_paths[1]: empty (path must not be empty)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestConfigError_As(t *testing.T) {
	var err error = fmt.Errorf("load: %w", &ConfigError{Path: "x.json"})

	var ce *ConfigError
	assert.True(t, errors.As(err, &ce))
	assert.Equal(t, "x.json", ce.Path)
}
