package dto

import (
	"bytes"
	"encoding/json"
	"time"
)

// APIResponse is the envelope every endpoint responds with
type APIResponse struct {
	Success   bool         `json:"success" example:"true"`
	Message   string       `json:"message,omitempty" example:"Operation completed successfully"`
	Data      interface{}  `json:"data,omitempty"`
	Error     *ErrorDetail `json:"error,omitempty"`
	Timestamp time.Time    `json:"timestamp" example:"2025-04-23T12:01:05.123Z"`
}

// NewSuccessResponse creates a standard success envelope
func NewSuccessResponse(data interface{}, message string) APIResponse {
	return APIResponse{
		Success:   true,
		Message:   message,
		Data:      data,
		Timestamp: time.Now(),
	}
}

// NumericString accepts either a JSON string or a JSON number and keeps the
// raw text, so numeric fields are parsed and validated by the service layer.
type NumericString string

// UnmarshalJSON implements json.Unmarshaler
func (n *NumericString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*n = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*n = NumericString(s)
		return nil
	}
	*n = NumericString(data)
	return nil
}

// String returns the raw text
func (n NumericString) String() string {
	return string(n)
}
