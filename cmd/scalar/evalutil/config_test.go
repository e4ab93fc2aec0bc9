package evalutil

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/chaisql/scalar"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestParseConfig(t *testing.T) {
	tests := []struct {
		name     string
		data     string
		expected Config
		fails    bool
	}{
		{"empty", "", Config{}, false},
		{"all", "integer_division: true\nno_overloading: true\nverbose: true\n", Config{IntegerDivision: true, NoOverloading: true, Verbose: true}, false},
		{"partial", "integer_division: true\n", Config{IntegerDivision: true}, false},
		{"unknown key", "integer-division: true\n", Config{}, true},
		{"invalid type", "verbose: sometimes\n", Config{}, true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			cfg, err := ParseConfig([]byte(test.data))
			if test.fails {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, test.expected, *cfg)
		})
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scalar.yaml")
	require.NoError(t, os.WriteFile(path, []byte("integer_division: true\n"), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.True(t, cfg.IntegerDivision)

	_, err = LoadConfig(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "missing.yaml")
}

func TestConfigEngine(t *testing.T) {
	var buf bytes.Buffer

	cfg := Config{IntegerDivision: true, Verbose: true}
	logger := cfg.NewLogger(&buf)
	require.Equal(t, logrus.DebugLevel, logger.GetLevel())

	e := cfg.NewEngine(logger)
	v, err := e.Div(scalar.Int(6), scalar.Int(3))
	require.NoError(t, err)
	require.Equal(t, scalar.TypeInteger, v.Type())

	// overflows are traced in verbose mode
	_, err = e.Add(scalar.Int(1<<62), scalar.Int(1<<62))
	require.NoError(t, err)
	require.Contains(t, buf.String(), "level=debug")

	require.Equal(t, logrus.WarnLevel, (&Config{}).NewLogger(&buf).GetLevel())
}
