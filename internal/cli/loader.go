package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/roach88/strux/value"
)

// LoadDocument reads a YAML or JSON document (by extension; YAML is the
// default) and converts it into the graph value model.
func LoadDocument(path string) (value.Value, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, fmt.Sprintf("cannot read %s", path), err)
	}

	var native any
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := json.Unmarshal(data, &native); err != nil {
			return nil, WrapExitError(ExitCommandError, fmt.Sprintf("cannot parse %s", path), err)
		}
	default:
		if err := yaml.Unmarshal(data, &native); err != nil {
			return nil, WrapExitError(ExitCommandError, fmt.Sprintf("cannot parse %s", path), err)
		}
	}

	v, err := value.FromNative(native)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, fmt.Sprintf("cannot convert %s", path), err)
	}
	return v, nil
}

// LoadRecord loads a document and requires its top level to be a record.
func LoadRecord(path string) (*value.Record, error) {
	v, err := LoadDocument(path)
	if err != nil {
		return nil, err
	}
	rec, ok := v.(*value.Record)
	if !ok {
		return nil, NewExitError(ExitCommandError, fmt.Sprintf("%s: top-level document must be a mapping, got %s", path, value.Classify(v)))
	}
	return rec, nil
}
