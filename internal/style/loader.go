package style

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/shhac/foldingcell/internal/fold"
)

// Format is a descriptor encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatFor picks the format from a file extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("unsupported style descriptor %q: want .yaml, .yml or .toml", path)
	}
}

// Load reads a descriptor file and returns it applied to the defaults.
func Load(path string) (fold.Config, error) {
	format, err := FormatFor(path)
	if err != nil {
		return fold.Config{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fold.Config{}, fmt.Errorf("reading style %s: %w", path, err)
	}

	cfg, err := Parse(data, format)
	if err != nil {
		return fold.Config{}, fmt.Errorf("loading style %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes a descriptor and returns it applied to the defaults.
// Unknown keys are rejected.
func Parse(data []byte, format Format) (fold.Config, error) {
	d, err := Decode(data, format)
	if err != nil {
		return fold.Config{}, err
	}
	return d.Apply(fold.DefaultConfig())
}

// Decode parses a descriptor without applying it.
func Decode(data []byte, format Format) (Descriptor, error) {
	var d Descriptor

	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&d); err != nil && !errors.Is(err, io.EOF) {
			return Descriptor{}, fmt.Errorf("parsing YAML: %w", err)
		}

	case FormatTOML:
		md, err := toml.Decode(string(data), &d)
		if err != nil {
			return Descriptor{}, fmt.Errorf("parsing TOML: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return Descriptor{}, fmt.Errorf("parsing TOML: unknown key %q", undecoded[0].String())
		}

	default:
		return Descriptor{}, fmt.Errorf("unknown style format %q", format)
	}

	return d, nil
}

// Encode renders cfg as a complete descriptor.
func Encode(cfg fold.Config, format Format) ([]byte, error) {
	d := DescriptorFor(cfg)

	switch format {
	case FormatYAML:
		data, err := yaml.Marshal(d)
		if err != nil {
			return nil, fmt.Errorf("encoding YAML: %w", err)
		}
		return data, nil

	case FormatTOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(d); err != nil {
			return nil, fmt.Errorf("encoding TOML: %w", err)
		}
		return buf.Bytes(), nil

	default:
		return nil, fmt.Errorf("unknown style format %q", format)
	}
}
