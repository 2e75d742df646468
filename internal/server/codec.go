package server

import (
	"encoding/json"
	"fmt"
)

// jsonCodec serializes the plain Go messages of the study service. It is
// registered under connect's "json" name so clients send application/json.
type jsonCodec struct{}

func (jsonCodec) Name() string { return "json" }

func (jsonCodec) Marshal(message any) ([]byte, error) {
	data, err := json.Marshal(message)
	if err != nil {
		return nil, fmt.Errorf("json.Marshal(%T) > %w", message, err)
	}
	return data, nil
}

func (jsonCodec) Unmarshal(data []byte, message any) error {
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, message); err != nil {
		return fmt.Errorf("json.Unmarshal(%T) > %w", message, err)
	}
	return nil
}
