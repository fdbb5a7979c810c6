// Package render writes query results and failures as JSON or YAML
// envelopes.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format selects the output encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Error codes carried in ErrorResponseBody.Code.
const (
	CodeNotFound        = "NOT_FOUND"
	CodeInvalidArgument = "INVALID_ARGUMENT"
	CodeInternal        = "INTERNAL_ERROR"
)

type SuccessResponse struct {
	Success bool `json:"success" yaml:"success"`
	Data    any  `json:"data" yaml:"data"`
	Meta    any  `json:"meta,omitempty" yaml:"meta,omitempty"`
}

type ErrorResponse struct {
	Success bool              `json:"success" yaml:"success"`
	Error   ErrorResponseBody `json:"error" yaml:"error"`
}

type ErrorResponseBody struct {
	Code    string `json:"code" yaml:"code"`
	Message string `json:"message" yaml:"message"`
}

// ParseFormat accepts "json" or "yaml", case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatJSON, FormatYAML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unknown output format %q", s)
	}
}

// Success writes data and optional meta in a success envelope.
func Success(w io.Writer, f Format, data any, meta map[string]any) error {
	resp := SuccessResponse{Success: true, Data: data}
	if len(meta) > 0 {
		resp.Meta = meta
	}
	return encode(w, f, resp)
}

// Error writes an error envelope.
func Error(w io.Writer, f Format, code, message string) error {
	return encode(w, f, ErrorResponse{
		Success: false,
		Error: ErrorResponseBody{
			Code:    code,
			Message: message,
		},
	})
}

func encode(w io.Writer, f Format, v any) error {
	switch f {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
}
