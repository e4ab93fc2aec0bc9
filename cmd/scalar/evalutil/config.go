package evalutil

import (
	"bytes"
	"io"
	"os"

	"github.com/chaisql/scalar"
	"github.com/cockroachdb/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Config of the engine used by the CLI.
// It can be read from a YAML file, whose keys are the names of the
// corresponding command line flags.
type Config struct {
	IntegerDivision bool `yaml:"integer_division"`
	NoOverloading   bool `yaml:"no_overloading"`
	Verbose         bool `yaml:"verbose"`
}

// LoadConfig reads the configuration file at path.
// Unknown keys are rejected.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read config file %s", path)
	}

	cfg, err := ParseConfig(data)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid config file %s", path)
	}

	return cfg, nil
}

// ParseConfig decodes a YAML configuration.
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	err := dec.Decode(&cfg)
	// an empty document keeps the defaults
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	return &cfg, nil
}

// NewLogger returns the logger of the CLI, writing to w.
// Traces of the engine are only displayed in verbose mode.
func (c *Config) NewLogger(w io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})

	if c.Verbose {
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetLevel(logrus.WarnLevel)
	}

	return logger
}

// NewEngine creates an engine configured by c.
func (c *Config) NewEngine(logger *logrus.Logger) *scalar.Engine {
	return scalar.New(&scalar.Options{
		IntegerDivision: c.IntegerDivision,
		NoOverloading:   c.NoOverloading,
		Logger:          logger,
	})
}
