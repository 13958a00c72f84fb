package transport

import "encoding/json"

// Envelope is the standard API response wrapper used for both success
// and error payloads. Validation failures carry per-field messages in
// Fields.
type Envelope struct {
	Status string            `json:"status"`
	Code   string            `json:"code,omitempty"`
	Data   interface{}       `json:"data,omitempty"`
	Error  string            `json:"error,omitempty"`
	Fields map[string]string `json:"fields,omitempty"`
}

// NewSuccess returns a success envelope.
func NewSuccess(data interface{}) Envelope {
	return Envelope{
		Status: "success",
		Data:   data,
	}
}

// NewError returns an error envelope with optional field-level detail.
func NewError(code, message string, fields map[string]string) Envelope {
	return Envelope{
		Status: "error",
		Code:   code,
		Error:  message,
		Fields: fields,
	}
}

// String returns the JSON representation (best-effort) for logging purposes.
func (e Envelope) String() string {
	out, err := json.Marshal(e)
	if err != nil {
		return "{}"
	}
	return string(out)
}
