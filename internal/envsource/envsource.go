// Package envsource resolves the environment-variable and config-file
// defaults an Arg may fall back to when the command line itself is silent
// about it. It feeds the accum.OriginEnv path: a value it returns is pushed
// with that origin, never treated as if it had come from the CLI.
package envsource

import (
	"errors"
	"os"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"cliarg/internal/model"
)

// Source binds a prefixed environment namespace and an optional YAML
// defaults file. The YAML file is read once, when the Source is built; the
// environment is read each time Value is called.
type Source struct {
	v *viper.Viper
}

// New builds a Source. prefix namespaces automatic environment lookups
// (e.g. prefix "CLIARG" turns an Arg id "timeout" into env var
// CLIARG_TIMEOUT). configPath, if non-empty, is a YAML file of arg id to
// default value; a missing file is not an error, since having none is the
// common case.
func New(prefix, configPath string) (*Source, error) {
	v := viper.New()
	v.SetEnvPrefix(prefix)
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")
		var notFound viper.ConfigFileNotFoundError
		if err := v.ReadInConfig(); err != nil && !errors.As(err, &notFound) {
			return nil, err
		}
	}

	return &Source{v: v}, nil
}

// NewFromYAML builds a Source whose defaults come from an in-memory YAML
// document (arg id to default value) rather than a file on disk, e.g. a
// config embedded with go:embed or fetched from a secrets manager. It is
// parsed directly with yaml.v3, independent of viper's own file-backed
// config loading, since there is no path for viper's ReadInConfig to read
// from here.
func NewFromYAML(prefix string, data []byte) (*Source, error) {
	var defaults map[string]string
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, &defaults); err != nil {
			return nil, err
		}
	}

	v := viper.New()
	v.SetEnvPrefix(prefix)
	v.AutomaticEnv()
	for id, value := range defaults {
		v.SetDefault(id, value)
	}

	return &Source{v: v}, nil
}

// Value resolves an env-origin default for arg. The Arg's own declared
// EnvVar, if set, takes precedence and is read verbatim via os.LookupEnv
// (its name is whatever the app author chose, not the Source's prefix);
// otherwise the viper-bound namespace is checked by arg id, which covers
// both the prefixed environment variable and the YAML defaults file.
func (s *Source) Value(arg *model.Arg) (string, bool) {
	if arg.EnvVar != "" {
		if v, ok := os.LookupEnv(arg.EnvVar); ok {
			return v, true
		}
	}
	if s.v.IsSet(arg.ID) {
		return s.v.GetString(arg.ID), true
	}
	return "", false
}
