package tileset

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format identifies a tile set file encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// FormatFromPath picks a format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported tile set extension %q (want .json, .toml, .yaml or .yml)", filepath.Ext(path))
	}
}

// Decode parses raw tile set content in the given format.
func Decode(content []byte, format Format) (File, error) {
	var file File

	switch format {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(content))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&file); err != nil {
			return file, fmt.Errorf("failed to parse JSON: %w", err)
		}
	case FormatTOML:
		md, err := toml.Decode(string(content), &file)
		if err != nil {
			return file, fmt.Errorf("failed to parse TOML: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return file, fmt.Errorf("failed to parse TOML: unknown key %q", undecoded[0].String())
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(content))
		dec.KnownFields(true)
		if err := dec.Decode(&file); err != nil {
			return file, fmt.Errorf("failed to parse YAML: %w", err)
		}
	default:
		return file, fmt.Errorf("unsupported tile set format %q", format)
	}

	return file, nil
}

// Parse decodes and validates a tile set. fallbackName is used when the file has no name.
func Parse(content []byte, format Format, fallbackName string) (*Set, error) {
	file, err := Decode(content, format)
	if err != nil {
		return nil, err
	}
	name := file.Name
	if name == "" {
		name = fallbackName
	}
	return New(name, file.Tiles)
}

// LoadFile reads a tile set from disk, choosing the decoder by extension.
func LoadFile(path string) (*Set, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tile set %s: %w", path, err)
	}

	set, err := Parse(content, format, strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)))
	if err != nil {
		return nil, fmt.Errorf("tile set %s: %w", path, err)
	}
	return set, nil
}

// LoadEmbedded reads a built-in tile set by file name.
func LoadEmbedded(filename string) (*Set, error) {
	content, err := dataFS.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded file %s: %w", filename, err)
	}

	set, err := Parse(content, FormatJSON, strings.TrimSuffix(filename, filepath.Ext(filename)))
	if err != nil {
		return nil, fmt.Errorf("embedded tile set %s: %w", filename, err)
	}
	return set, nil
}

// Default loads the built-in terrain tile set.
func Default() (*Set, error) {
	return LoadEmbedded(DefaultName)
}

// MustDefault loads the built-in tile set, panicking on error.
// The embedded data is part of the binary, so a failure is a build defect.
func MustDefault() *Set {
	set, err := Default()
	if err != nil {
		panic(err)
	}
	return set
}

// Load returns the tile set at path, or the built-in default when path is empty.
func Load(path string) (*Set, error) {
	if path == "" {
		return Default()
	}
	return LoadFile(path)
}
