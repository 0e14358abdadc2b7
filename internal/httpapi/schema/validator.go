package requestschema

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"horse.fit/fusiontranslate/internal/language"
)

//go:embed translate_request.schema.json
var translateRequestSchemaJSON string

// TranslateRequest is a validated POST /v1/translate body.
type TranslateRequest struct {
	Provider string   `json:"provider,omitempty"`
	Source   string   `json:"source,omitempty"`
	Target   string   `json:"target"`
	Text     *string  `json:"text,omitempty"`
	Texts    []string `json:"texts,omitempty"`
	Detect   bool     `json:"detect,omitempty"`

	SourceCode language.Code `json:"-"`
	TargetCode language.Code `json:"-"`
}

// IsBatch reports whether the request carried a texts array.
func (r *TranslateRequest) IsBatch() bool {
	return r.Text == nil
}

// ValidationError lists field-level problems keyed by JSON field name.
// The document root is keyed as "body".
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for key := range e.Fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		parts = append(parts, key+": "+e.Fields[key])
	}
	return "invalid request: " + strings.Join(parts, "; ")
}

var (
	compileOnce       sync.Once
	compiledSchema    *jsonschema.Schema
	compiledSchemaErr error
)

// ValidateTranslateRequest decodes payload, checks it against the embedded
// schema and resolves the language tags. Problems with the payload are
// returned as *ValidationError.
func ValidateTranslateRequest(payload []byte) (*TranslateRequest, error) {
	value, err := decodeStrictJSON(payload)
	if err != nil {
		return nil, &ValidationError{Fields: map[string]string{"body": err.Error()}}
	}

	schema, err := loadSchema()
	if err != nil {
		return nil, fmt.Errorf("load schema: %w", err)
	}

	if err := schema.Validate(value); err != nil {
		var ve *jsonschema.ValidationError
		if errors.As(err, &ve) {
			return nil, &ValidationError{Fields: fieldErrors(ve)}
		}
		return nil, fmt.Errorf("schema validation failed: %w", err)
	}

	normalized, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("normalize payload JSON: %w", err)
	}

	var req TranslateRequest
	if err := json.Unmarshal(normalized, &req); err != nil {
		return nil, fmt.Errorf("unmarshal payload: %w", err)
	}

	if err := resolveLanguages(&req); err != nil {
		return nil, err
	}
	return &req, nil
}

func resolveLanguages(req *TranslateRequest) error {
	fields := make(map[string]string)

	target, ok := language.Parse(req.Target)
	if !ok {
		fields["target"] = fmt.Sprintf("unknown language %q", req.Target)
	}
	req.TargetCode = target

	if source := strings.TrimSpace(req.Source); source != "" && !strings.EqualFold(source, "auto") {
		code, ok := language.Parse(source)
		if !ok {
			fields["source"] = fmt.Sprintf("unknown language %q", req.Source)
		}
		req.SourceCode = code
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// fieldErrors flattens the leaf causes of a schema failure.
func fieldErrors(ve *jsonschema.ValidationError) map[string]string {
	fields := make(map[string]string)
	var walk func(*jsonschema.ValidationError)
	walk = func(e *jsonschema.ValidationError) {
		if len(e.Causes) == 0 {
			key := strings.TrimPrefix(e.InstanceLocation, "/")
			if key == "" {
				key = "body"
			}
			if _, exists := fields[key]; !exists {
				fields[key] = e.Message
			}
			return
		}
		for _, cause := range e.Causes {
			walk(cause)
		}
	}
	walk(ve)
	return fields
}

func loadSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		compiler.Draft = jsonschema.Draft2020

		if err := compiler.AddResource("translate_request.schema.json", strings.NewReader(translateRequestSchemaJSON)); err != nil {
			compiledSchemaErr = fmt.Errorf("add schema resource: %w", err)
			return
		}

		schema, err := compiler.Compile("translate_request.schema.json")
		if err != nil {
			compiledSchemaErr = fmt.Errorf("compile schema: %w", err)
			return
		}

		compiledSchema = schema
	})

	if compiledSchemaErr != nil {
		return nil, compiledSchemaErr
	}
	if compiledSchema == nil {
		return nil, fmt.Errorf("schema not initialized")
	}
	return compiledSchema, nil
}

func decodeStrictJSON(raw []byte) (any, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("payload is empty")
	}

	decoder := json.NewDecoder(bytes.NewReader(trimmed))
	decoder.UseNumber()

	var value any
	if err := decoder.Decode(&value); err != nil {
		return nil, err
	}

	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		return nil, fmt.Errorf("payload contains trailing content")
	}

	return value, nil
}
