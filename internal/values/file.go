package values

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned for files that are not JSON, TOML or YAML.
var ErrUnsupportedFormat = errors.New("unsupported dataset format")

// File is a Source reading a symbol -> number table from disk. The format is
// chosen by extension. Values may sit at the top level or under a "values"
// key:
//
//	# values.toml
//	[values]
//	H = 1.5
//	Fe = 42
type File string

// Values reads and decodes the file.
func (f File) Values(ctx context.Context) (Mapping, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	path := string(f)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read dataset %s", path)
	}

	raw := map[string]any{}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		err = json.Unmarshal(data, &raw)
	case ".toml":
		err = toml.Unmarshal(data, &raw)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &raw)
	default:
		return nil, errors.WithHint(errors.Wrapf(ErrUnsupportedFormat, "%s", path),
			"use a .json, .toml, .yaml or .yml file")
	}
	if err != nil {
		return nil, errors.Wrapf(err, "decode dataset %s", path)
	}

	if nested, ok := raw["values"].(map[string]any); ok {
		raw = nested
	}
	m := make(Mapping, len(raw))
	for sym, v := range raw {
		n, ok := toFloat(v)
		if !ok {
			return nil, errors.Newf("dataset %s: value for %q is not a number (%T)", path, sym, v)
		}
		if err := checkFinite(sym, n); err != nil {
			return nil, errors.Wrapf(err, "dataset %s", path)
		}
		m[sym] = n
	}
	if len(m) == 0 {
		return nil, errors.Wrapf(ErrEmptyMapping, "dataset %s", path)
	}
	return m, nil
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}
