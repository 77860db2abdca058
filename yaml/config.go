// Package yaml loads markotravel configuration files.
package yaml

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/fwojciec/markotravel"
	"gopkg.in/yaml.v3"
)

// LoadConfig reads the configuration file at path. Fields absent from the
// file are left empty so the result can be merged over defaults.
func LoadConfig(path string) (*markotravel.Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, markotravel.Errorf(markotravel.ENOTFOUND, "config file not found: %s", path)
	} else if err != nil {
		return nil, markotravel.Errorf(markotravel.EREAD, "read config file %s: %v", path, err)
	}
	return DecodeConfig(data)
}

// DecodeConfig parses YAML configuration. Unknown keys are rejected.
func DecodeConfig(data []byte) (*markotravel.Config, error) {
	var cfg markotravel.Config

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, markotravel.Errorf(markotravel.EINVALID, "decode config: %v", err)
	}
	return &cfg, nil
}

// EncodeConfig renders cfg as YAML.
func EncodeConfig(cfg *markotravel.Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	return data, nil
}
