package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned by LoadFile for an unknown extension.
var ErrUnsupportedFormat = errors.New("unsupported config format")

// File is the settings file read by the oaikit command. Empty fields mean
// "unspecified".
type File struct {
	APIKey       string `json:"api_key" yaml:"api_key" toml:"api_key"`
	Organization string `json:"organization" yaml:"organization" toml:"organization"`
	ImageDir     string `json:"image_dir" yaml:"image_dir" toml:"image_dir"`
	SaveImages   *bool  `json:"save_images" yaml:"save_images" toml:"save_images"`
	LogLevel     string `json:"log_level" yaml:"log_level" toml:"log_level"`
	LogFormat    string `json:"log_format" yaml:"log_format" toml:"log_format"`
}

// Configuration returns the credentials of the file, falling back to fallback
// for the fields it leaves empty.
func (f File) Configuration(fallback Configuration) Configuration {
	return Configuration{APIKey: f.APIKey, Organization: f.Organization}.merge(fallback)
}

// PersistImages reports whether downloaded images should be saved. It
// defaults to true.
func (f File) PersistImages() bool {
	return f.SaveImages == nil || *f.SaveImages
}

// LoadFile reads a settings file from the operating system file system.
// Supported extensions: .yaml, .yml, .toml and .json.
func LoadFile(path string) (File, error) {
	return LoadFileFS(afero.NewOsFs(), path)
}

// LoadFileFS is LoadFile on fs.
func LoadFileFS(fsys afero.Fs, path string) (File, error) {
	var f File
	if path == "" {
		return f, fmt.Errorf("empty config path")
	}
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return f, fmt.Errorf("reading config: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &f)
	case ".toml":
		err = toml.Unmarshal(data, &f)
	case ".json":
		err = json.Unmarshal(data, &f)
	default:
		return f, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return File{}, fmt.Errorf("decoding %s: %w", path, err)
	}
	return f, nil
}
