// Package response defines the PMS wire record used to propagate
// exceptions between services.
package response

import (
	"encoding/json"
	"errors"
	"fmt"
)

// NullDetail is the literal sent in place of an absent detail.
// Peers read it as "no detail", never as the text "null".
const NullDetail = "null"

// ErrMalformed is returned when a payload is not a valid PMS response.
var ErrMalformed = errors.New("malformed pms response")

// PmsResponse is the flat record exchanged on the wire.
type PmsResponse struct {
	Code    string `json:"ExceptionCode"`
	Detail  string `json:"ExceptionDetail"`
	Message string `json:"ExceptionMessage"`
}

// New builds a record. A nil detail is encoded as NullDetail.
func New(code, message string, detail *string) PmsResponse {
	r := PmsResponse{
		Code:    code,
		Message: message,
		Detail:  NullDetail,
	}
	if detail != nil {
		r.Detail = *detail
	}

	return r
}

// HasDetail reports whether the record carries a detail other than NullDetail.
func (r PmsResponse) HasDetail() bool { return r.Detail != NullDetail }

// Marshal encodes r as JSON.
func Marshal(r PmsResponse) ([]byte, error) {
	return json.Marshal(r)
}

// Unmarshal decodes a JSON payload. A missing or JSON-null
// ExceptionDetail decodes to NullDetail.
func Unmarshal(data []byte) (PmsResponse, error) {
	var raw struct {
		Code    string  `json:"ExceptionCode"`
		Detail  *string `json:"ExceptionDetail"`
		Message string  `json:"ExceptionMessage"`
	}

	if err := json.Unmarshal(data, &raw); err != nil {
		return PmsResponse{}, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	return New(raw.Code, raw.Message, raw.Detail), nil
}
