package flagx

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		allowed []string
		want    []string
	}{
		{
			name:    "keeps allowed flag with value",
			args:    []string{"-a", "http://x", "-z", "nope"},
			allowed: []string{"-a"},
			want:    []string{"-a", "http://x"},
		},
		{
			name:    "keeps equals form",
			args:    []string{"--config=conf.json", "-a", "http://x"},
			allowed: []string{"--config"},
			want:    []string{"--config=conf.json"},
		},
		{
			name:    "drops unknown flags entirely",
			args:    []string{"-z", "v", "-y=w"},
			allowed: []string{"-a"},
			want:    []string{},
		},
		{
			name:    "flag without value at end",
			args:    []string{"-a"},
			allowed: []string{"-a"},
			want:    []string{"-a"},
		},
		{
			name:    "value looking like flag is not consumed",
			args:    []string{"-a", "-t", "5"},
			allowed: []string{"-a", "-t"},
			want:    []string{"-a", "-t", "5"},
		},
		{
			name:    "empty input",
			args:    nil,
			allowed: []string{"-a"},
			want:    []string{},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := FilterArgs(tc.args, tc.allowed)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestJSONConfigFlags(t *testing.T) {
	orig := os.Args
	t.Cleanup(func() { os.Args = orig })

	os.Args = []string{"snooze", "-c", "conf.json", "-a", "http://x"}
	require.Equal(t, "conf.json", JSONConfigFlags())

	os.Args = []string{"snooze", "-config=other.json"}
	require.Equal(t, "other.json", JSONConfigFlags())

	os.Args = []string{"snooze", "-config", "other.json"}
	require.Equal(t, "other.json", JSONConfigFlags())

	os.Args = []string{"snooze"}
	require.Equal(t, "", JSONConfigFlags())
}
