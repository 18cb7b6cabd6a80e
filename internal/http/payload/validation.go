package payload

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/jellydator/validation"
)

// Decoder decodes a JSON request body and validates it when the target
// implements validation.Validatable.
type Decoder struct{}

func (d Decoder) DecodeJSONPayload(r *http.Request, object any) error {
	decoder := json.NewDecoder(r.Body)
	defer r.Body.Close()
	decoder.DisallowUnknownFields()
	err := decoder.Decode(object)
	if err != nil {
		return fmt.Errorf("decoding json payload: %w", err)
	}
	return d.validatePayload(object)
}

func (d Decoder) validatePayload(object any) error {
	t, ok := object.(validation.Validatable)
	if !ok {
		// nothing to validate
		return nil
	}

	if err := t.Validate(); err != nil {
		return fmt.Errorf("validating payload: %w", err)
	}

	return nil
}

// Envelope mirrors the response body written by the handlers.
type Envelope[T any] struct {
	Message string `json:"message,omitempty"`
	Data    T      `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// DecodeEnvelope reads a handler response body into env.
func DecodeEnvelope[T any](body io.ReadCloser, env *Envelope[T]) error {
	defer body.Close()
	if err := json.NewDecoder(body).Decode(env); err != nil {
		return fmt.Errorf("decoding json response: %w", err)
	}
	return nil
}
