package schema

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/comalice/signalx"
)

// Format is a circuit document encoding.
type Format string

const (
	YAML Format = "yaml"
	JSON Format = "json"
)

// FormatFromPath picks the format from a file extension. Unknown extensions
// are treated as YAML.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return JSON
	default:
		return YAML
	}
}

// LoadFile reads, decodes and validates a circuit document.
func LoadFile(path string) (CircuitConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return CircuitConfig{}, fmt.Errorf("read %s: %w", path, err)
	}
	cfg, err := Decode(data, FormatFromPath(path))
	if err != nil {
		return CircuitConfig{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Decode parses and validates a circuit document. Unknown fields are
// rejected. A non-boolean initial state yields an error wrapping
// signalx.ErrTypeConstraint.
func Decode(data []byte, format Format) (CircuitConfig, error) {
	var cfg CircuitConfig
	switch format {
	case JSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&cfg); err != nil {
			return CircuitConfig{}, wrapDecodeError("json", err)
		}
	case YAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil {
			if errors.Is(err, io.EOF) {
				return CircuitConfig{}, errors.New("yaml decode: empty document")
			}
			return CircuitConfig{}, wrapDecodeError("yaml", err)
		}
	default:
		return CircuitConfig{}, fmt.Errorf("unsupported format %q", format)
	}

	if err := cfg.Validate(); err != nil {
		return CircuitConfig{}, err
	}
	return cfg, nil
}

// Encode serializes cfg.
func Encode(cfg CircuitConfig, format Format) ([]byte, error) {
	switch format {
	case JSON:
		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("json marshal: %w", err)
		}
		return data, nil
	case YAML:
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return nil, fmt.Errorf("yaml marshal: %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
}

func wrapDecodeError(codec string, err error) error {
	if isTypeMismatch(err) {
		return fmt.Errorf("%s decode: %w: %v", codec, signalx.ErrTypeConstraint, err)
	}
	return fmt.Errorf("%s decode: %w", codec, err)
}

// isTypeMismatch reports whether err came from a value of the wrong type.
// yaml.v3 also reports unknown fields as a TypeError, so its messages are
// inspected.
func isTypeMismatch(err error) bool {
	var jerr *json.UnmarshalTypeError
	if errors.As(err, &jerr) {
		return true
	}
	var yerr *yaml.TypeError
	if errors.As(err, &yerr) {
		for _, msg := range yerr.Errors {
			if strings.Contains(msg, "cannot unmarshal") {
				return true
			}
		}
	}
	return false
}
