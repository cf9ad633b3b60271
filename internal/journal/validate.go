package journal

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schema.json
var schemaJSON string

// ValidationError is a single schema violation with the path of the
// offending value.
type ValidationError struct {
	Path string
	Err  error
}

func (e *ValidationError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s", e.Path, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// ValidationResult collects the outcome of validating a journal file.
type ValidationResult struct {
	Valid    bool
	Errors   []error
	Warnings []string
}

// Validate checks the journal file at path against the journal schema. An
// empty or missing file is valid. Entries whose completed_at precedes
// create_at produce warnings rather than errors: the ordering holds by
// construction but is not part of the wire contract.
func Validate(path string) (*ValidationResult, error) {
	result := &ValidationResult{
		Valid:    true,
		Errors:   make([]error, 0),
		Warnings: make([]string, 0),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			result.Warnings = append(result.Warnings, "journal file does not exist yet")
			return result, nil
		}
		return nil, fmt.Errorf("read journal: %w", err)
	}
	if isBlank(data) {
		result.Warnings = append(result.Warnings, "journal is empty")
		return result, nil
	}

	schema, err := compileSchema()
	if err != nil {
		return nil, err
	}

	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, &ValidationError{
			Err: fmt.Errorf("not valid JSON: %w", err),
		})
		return result, nil
	}

	if err := schema.Validate(doc); err != nil {
		result.Valid = false
		appendSchemaErrors(result, err)
		return result, nil
	}

	// The document matches the wire contract; decode for ordering checks.
	var tasks []Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, &ValidationError{
			Err: fmt.Errorf("decode tasks: %w", err),
		})
		return result, nil
	}
	for i := range tasks {
		t := &tasks[i]
		if t.CompletedAt != nil && t.CompletedAt.Before(t.CreateAt) {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("[%d]: completed_at precedes create_at", i))
		}
	}

	return result, nil
}

func compileSchema() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("journal.schema.json", strings.NewReader(schemaJSON)); err != nil {
		return nil, fmt.Errorf("load journal schema: %w", err)
	}
	schema, err := compiler.Compile("journal.schema.json")
	if err != nil {
		return nil, fmt.Errorf("compile journal schema: %w", err)
	}
	return schema, nil
}

func appendSchemaErrors(result *ValidationResult, err error) {
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		result.Errors = append(result.Errors, err)
		return
	}
	collectSchemaErrors(result, ve)
}

func collectSchemaErrors(result *ValidationResult, err *jsonschema.ValidationError) {
	if err == nil {
		return
	}
	if len(err.Causes) == 0 {
		result.Errors = append(result.Errors, &ValidationError{
			Path: jsonPointerToPath(err.InstanceLocation),
			Err:  fmt.Errorf("%s", err.Message),
		})
		return
	}
	for _, cause := range err.Causes {
		collectSchemaErrors(result, cause)
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
