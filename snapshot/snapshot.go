// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package snapshot loads account snapshots from JSON or YAML documents.
package snapshot

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/vechain/govunlock/gov"
)

// Format is a snapshot document format.
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
)

// FormatOf returns the format of a file by its extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return JSON, nil
	case ".yaml", ".yml":
		return YAML, nil
	default:
		return "", errors.Errorf("unsupported snapshot file %q", path)
	}
}

// LoadFile loads a snapshot from path, "-" reads JSON from stdin.
func LoadFile(path string) (*gov.Snapshot, error) {
	if path == "-" {
		return Decode(os.Stdin, JSON)
	}
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open snapshot")
	}
	defer file.Close()

	snap, err := Decode(file, format)
	if err != nil {
		return nil, errors.WithMessage(err, path)
	}
	return snap, nil
}

// Decode reads and validates one snapshot document in format.
func Decode(r io.Reader, format Format) (*gov.Snapshot, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "read snapshot")
	}
	if format == YAML {
		if data, err = yamlToJSON(data); err != nil {
			return nil, err
		}
	}

	var snap gov.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, errors.Wrap(err, "decode snapshot")
	}
	if err := snap.Validate(); err != nil {
		return nil, errors.WithMessage(err, "invalid snapshot")
	}
	return &snap, nil
}

// yamlToJSON converts a YAML document to JSON, so both share one schema.
func yamlToJSON(data []byte) ([]byte, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "decode yaml")
	}
	normalized, err := normalize(doc)
	if err != nil {
		return nil, err
	}
	return json.Marshal(normalized)
}

// normalize turns YAML mappings into JSON objects, integer keys such as track ids
// becoming strings.
func normalize(v any) (any, error) {
	switch v := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, item := range v {
			n, err := normalize(item)
			if err != nil {
				return nil, err
			}
			out[k] = n
		}
		return out, nil
	case map[any]any:
		out := make(map[string]any, len(v))
		for k, item := range v {
			switch k.(type) {
			case string, int, int64, uint64:
			default:
				return nil, errors.Errorf("unsupported yaml key %v", k)
			}
			n, err := normalize(item)
			if err != nil {
				return nil, err
			}
			out[fmt.Sprint(k)] = n
		}
		return out, nil
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			n, err := normalize(item)
			if err != nil {
				return nil, err
			}
			out[i] = n
		}
		return out, nil
	default:
		return v, nil
	}
}
