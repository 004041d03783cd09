package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// RowID is a row identifier as the store reports it. Tables keyed by uuid
// send a JSON string, tables keyed by bigserial send a JSON number; both
// are kept as text.
type RowID string

func (id *RowID) UnmarshalJSON(data []byte) error {
	switch {
	case bytes.Equal(data, []byte("null")):
		*id = ""
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = RowID(s)
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("row id must be a string or a number: %w", err)
		}
		*id = RowID(n.String())
	}
	return nil
}

func (id RowID) String() string {
	return string(id)
}
