package media

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// DecodePayload parses a JSON document, keeping numbers as json.Number so
// numeric identifiers survive with their literal text.
func DecodePayload(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))))
	dec.UseNumber()
	var payload any
	if err := dec.Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode payload: %w", err)
	}
	if err := dec.Decode(new(any)); !errors.Is(err, io.EOF) {
		return nil, errors.New("decode payload: trailing data after JSON document")
	}
	return payload, nil
}

// PayloadRecords extracts the record list from a payload. Recognized shapes,
// in order: a bare list, {"items": [...]}, {"all": [...]}, and
// {"movies": [...], "tv": [...]} (movies first, either may be missing). Any
// other shape yields nil.
func PayloadRecords(payload any) []any {
	switch v := payload.(type) {
	case []any:
		return v
	case map[string]any:
		if items, ok := v["items"].([]any); ok {
			return items
		}
		if all, ok := v["all"].([]any); ok {
			return all
		}
		movies, hasMovies := v["movies"].([]any)
		tv, hasTV := v["tv"].([]any)
		if !hasMovies && !hasTV {
			return nil
		}
		records := make([]any, 0, len(movies)+len(tv))
		records = append(records, movies...)
		return append(records, tv...)
	default:
		return nil
	}
}

// NormalizePayload converts a payload of any supported shape into canonical
// items in payload order. Unrepresentable records and non-object elements are
// dropped; of several records sharing an id only the first is kept.
func NormalizePayload(payload any) []Item {
	records := PayloadRecords(payload)
	if len(records) == 0 {
		return nil
	}
	items := make([]Item, 0, len(records))
	seen := make(map[string]struct{}, len(records))
	for _, record := range records {
		raw, ok := record.(map[string]any)
		if !ok {
			continue
		}
		item, ok := Normalize(raw)
		if !ok {
			continue
		}
		if _, dup := seen[item.ID]; dup {
			continue
		}
		seen[item.ID] = struct{}{}
		items = append(items, item)
	}
	return items
}
