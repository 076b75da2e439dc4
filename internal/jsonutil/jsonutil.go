// Package jsonutil provides shared helpers for decoding JSON payloads
// with contextual errors.
package jsonutil

import (
	"encoding/json"
	"fmt"
	"io"
)

// UnmarshalWithContext unmarshals JSON data into v and wraps any error
// with the provided context message.
func UnmarshalWithContext(data []byte, v interface{}, context string) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%s: %w", context, err)
	}
	return nil
}

// ReadLimited reads at most limit bytes from r.
// Returns an error if r holds more than limit bytes.
func ReadLimited(r io.Reader, limit int64, context string) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", context, err)
	}
	if int64(len(data)) > limit {
		return nil, fmt.Errorf("%s: body exceeds %d bytes", context, limit)
	}
	return data, nil
}

// DecodeLimited reads at most limit bytes from r and unmarshals them into v.
// Empty input is an error.
func DecodeLimited(r io.Reader, limit int64, v interface{}, context string) error {
	data, err := ReadLimited(r, limit, context)
	if err != nil {
		return err
	}
	if len(data) == 0 {
		return fmt.Errorf("%s: empty body", context)
	}
	return UnmarshalWithContext(data, v, context)
}
