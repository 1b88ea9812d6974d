package utils

import (
	"encoding/json"
	"fmt"
)

// SerializeJSON indents, since the output is meant for a terminal.
func SerializeJSON(v any) ([]byte, error) {
	value, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize JSON: %w", err)
	}
	return value, nil
}
