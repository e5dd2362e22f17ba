// Package config loads fm-demod settings from a YAML file.
//
// Keys are flag names. Subcommand flags may be given flat or nested under
// the subcommand name:
//
//	samplerate: 2000000
//	resamplerate: 48000
//	intype: u8
//	outtype: i16
//	bandwidth: 200000
//	fm:
//	  deviation: 75000
//	  squarewave: false
//
// Values on the command line take precedence over the file.
package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"
)

// Values holds the decoded YAML document.
type Values map[string]any

// Parse decodes a YAML document. An empty document yields no values.
func Parse(data []byte) (Values, error) {
	var v Values
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if v == nil {
		v = Values{}
	}
	return v, nil
}

// Load reads and decodes the YAML file at path.
func Load(path string) (Values, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	v, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return v, nil
}

// Lookup returns the value for a flag, first under the command section and
// then at the top level. Dashes and underscores in keys are interchangeable.
func (v Values) Lookup(command, flag string) (any, bool) {
	if command != "" {
		if section, ok := v.section(command); ok {
			if val, ok := section.get(flag); ok {
				return val, true
			}
		}
	}
	return v.get(flag)
}

func (v Values) section(name string) (Values, bool) {
	raw, ok := v.get(name)
	if !ok {
		return nil, false
	}
	switch m := raw.(type) {
	case map[string]any:
		return Values(m), true
	case map[any]any:
		out := make(Values, len(m))
		for k, val := range m {
			out[fmt.Sprint(k)] = val
		}
		return out, true
	default:
		return nil, false
	}
}

func (v Values) get(key string) (any, bool) {
	if val, ok := v[key]; ok {
		return val, true
	}
	alt := strings.ReplaceAll(key, "-", "_")
	if alt == key {
		alt = strings.ReplaceAll(key, "_", "-")
	}
	val, ok := v[alt]
	return val, ok
}

// Resolver exposes the values to kong. Scalars are returned in their string
// form so kong's own mappers do the type conversion.
func (v Values) Resolver() kong.Resolver {
	return kong.ResolverFunc(func(_ *kong.Context, parent *kong.Path, flag *kong.Flag) (any, error) {
		command := ""
		if parent != nil && parent.Command != nil {
			command = parent.Command.Name
		}

		val, ok := v.Lookup(command, flag.Name)
		if !ok || val == nil {
			return nil, nil
		}

		switch val.(type) {
		case map[string]any, map[any]any, []any:
			return nil, fmt.Errorf("config key %q must be a scalar", flag.Name)
		}
		return fmt.Sprint(val), nil
	})
}

// Loader is a kong.ConfigurationLoader for YAML files.
func Loader(r io.Reader) (kong.Resolver, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	v, err := Parse(data)
	if err != nil {
		return nil, err
	}
	return v.Resolver(), nil
}
