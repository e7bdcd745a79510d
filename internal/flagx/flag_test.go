package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		allowed []string
		want    []string
	}{
		{
			name:    "short flag with separate value",
			args:    []string{"-c", "conf.json", "-a", "localhost"},
			allowed: []string{"-c"},
			want:    []string{"-c", "conf.json"},
		},
		{
			name:    "equals form",
			args:    []string{"--config=alt.json", "-a", "localhost"},
			allowed: []string{"--config"},
			want:    []string{"--config=alt.json"},
		},
		{
			name:    "unknown flags and positionals ignored",
			args:    []string{"-x", "1", "--y=2", "positional"},
			allowed: []string{"-c"},
			want:    []string{},
		},
		{
			name:    "flag without value at end",
			args:    []string{"-s"},
			allowed: []string{"-s"},
			want:    []string{"-s"},
		},
		{
			name:    "next dash token is not a value",
			args:    []string{"-d", "-s", "secret"},
			allowed: []string{"-d", "-s"},
			want:    []string{"-d", "-s", "secret"},
		},
		{
			name:    "order preserved across several allowed flags",
			args:    []string{"-a", ":50051", "-unlock", "ada@x.com", "-w", ":3000"},
			allowed: []string{"-a", "-w"},
			want:    []string{"-a", ":50051", "-w", ":3000"},
		},
		{
			name:    "empty",
			args:    nil,
			allowed: []string{"-a"},
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowed))
		})
	}
}

func TestConfigFileFlag(t *testing.T) {
	assert.Equal(t, "conf.json", ConfigFileFlag([]string{"-a", ":1", "-c", "conf.json"}))
	assert.Equal(t, "long.json", ConfigFileFlag([]string{"-config", "long.json"}))
	assert.Equal(t, "eq.json", ConfigFileFlag([]string{"-config=eq.json"}))
	assert.Equal(t, "", ConfigFileFlag([]string{"-a", ":1"}))
}

func TestPositional(t *testing.T) {
	valued := []string{"-a", "-c"}

	tests := []struct {
		name string
		args []string
		want []string
	}{
		{"none", nil, []string{}},
		{"command only", []string{"login"}, []string{"login"}},
		{"flags before command", []string{"-a", "host:1", "-c=x.json", "profile"}, []string{"profile"}},
		{"boolean flag does not eat command", []string{"-v", "status"}, []string{"status"}},
		{"double dash", []string{"-a", "h", "--", "-weird"}, []string{"-weird"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Positional(tt.args, valued))
		})
	}
}
