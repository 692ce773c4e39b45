package v1

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// IDs is a list of snowflakes. It encodes as JSON strings and decodes from
// either strings or numbers.
type IDs []int64

func (ids IDs) MarshalJSON() ([]byte, error) {
	if ids == nil {
		return []byte("[]"), nil
	}
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = strconv.FormatInt(id, 10)
	}
	return json.Marshal(out)
}

func (ids *IDs) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed := make(IDs, 0, len(raw))
	for _, r := range raw {
		text := string(bytes.Trim(r, `"`))
		id, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid id %s: %w", r, err)
		}
		parsed = append(parsed, id)
	}
	*ids = parsed
	return nil
}
