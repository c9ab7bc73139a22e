package config

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

const schemaURL = "tasktree.schema.json"

// Schema is the JSON Schema every config file must satisfy.
const Schema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "title": "tasktree configuration",
  "type": "object",
  "additionalProperties": false,
  "properties": {
    "prompt": {"type": "string"},
    "farewell": {"type": "string"},
    "color": {"type": "boolean"},
    "log_level": {"enum": ["debug", "info", "warn", "warning", "error", "fatal"]},
    "log_format": {"enum": ["text", "json", "logfmt"]},
    "log_file": {"type": "string"},
    "log_timestamps": {"type": "boolean"},
    "log_caller": {"type": "boolean"}
  }
}`

// ValidationError represents a validation error with context.
type ValidationError struct {
	File string // config file being validated
	Path string // key path to the error location
	Err  error  // Underlying error
}

func (e *ValidationError) Error() string {
	switch {
	case e.File != "" && e.Path != "":
		return fmt.Sprintf("%s: %s: %s", e.File, e.Path, e.Err)
	case e.File != "":
		return fmt.Sprintf("%s: %s", e.File, e.Err)
	case e.Path != "":
		return fmt.Sprintf("%s: %s", e.Path, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

func compileSchema() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(schemaURL, strings.NewReader(Schema)); err != nil {
		return nil, fmt.Errorf("add config schema: %w", err)
	}
	schema, err := compiler.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile config schema: %w", err)
	}
	return schema, nil
}

// validateRaw checks a decoded config document against Schema.
// It returns one ValidationError per failing leaf.
func validateRaw(file string, raw map[string]interface{}) []error {
	schema, err := compileSchema()
	if err != nil {
		return []error{err}
	}

	if raw == nil {
		raw = map[string]interface{}{}
	}
	// Round-trip through JSON so TOML and YAML values become the plain
	// JSON types the validator understands.
	data, err := json.Marshal(raw)
	if err != nil {
		return []error{&ValidationError{File: file, Err: fmt.Errorf("marshal config for validation: %w", err)}}
	}
	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return []error{&ValidationError{File: file, Err: fmt.Errorf("unmarshal config for validation: %w", err)}}
	}

	if err := schema.Validate(doc); err != nil {
		var errs []error
		ve, ok := err.(*jsonschema.ValidationError)
		if !ok {
			return []error{&ValidationError{File: file, Err: err}}
		}
		collectSchemaErrors(&errs, file, ve)
		return errs
	}
	return nil
}

func collectSchemaErrors(errs *[]error, file string, err *jsonschema.ValidationError) {
	if len(err.Causes) == 0 {
		*errs = append(*errs, &ValidationError{
			File: file,
			Path: jsonPointerToPath(err.InstanceLocation),
			Err:  fmt.Errorf("%s", err.Message),
		})
		return
	}
	for _, cause := range err.Causes {
		collectSchemaErrors(errs, file, cause)
	}
}

func jsonPointerToPath(ptr string) string {
	ptr = strings.TrimPrefix(ptr, "#")
	ptr = strings.TrimPrefix(ptr, "/")
	if ptr == "" {
		return ""
	}

	path := ""
	for _, part := range strings.Split(ptr, "/") {
		part = strings.ReplaceAll(part, "~1", "/")
		part = strings.ReplaceAll(part, "~0", "~")
		if part == "" {
			continue
		}
		if idx, err := strconv.Atoi(part); err == nil {
			path += fmt.Sprintf("[%d]", idx)
			continue
		}
		if path == "" {
			path = part
		} else {
			path += "." + part
		}
	}
	return path
}
