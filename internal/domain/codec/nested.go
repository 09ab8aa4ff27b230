package codec

import (
	"fmt"

	"github.com/goccy/go-json"
)

// EncodeNested encodes every element to its own JSON document, then encodes
// the list of documents as a JSON array of strings.
// A nil or empty slice encodes to "[]".
func EncodeNested[T any](items []T) (string, error) {
	docs := make([]string, 0, len(items))
	for i := range items {
		raw, err := json.Marshal(items[i])
		if err != nil {
			return "", fmt.Errorf("encode element %d: %w", i, err)
		}
		docs = append(docs, string(raw))
	}

	outer, err := json.Marshal(docs)
	if err != nil {
		return "", fmt.Errorf("encode outer list: %w", err)
	}
	return string(outer), nil
}

// DecodeNested reverses EncodeNested. The result is never nil.
func DecodeNested[T any](payload string) ([]T, error) {
	var docs []string
	if err := json.Unmarshal([]byte(payload), &docs); err != nil {
		return nil, fmt.Errorf("decode outer list: %w", err)
	}

	items := make([]T, 0, len(docs))
	for i, doc := range docs {
		var item T
		if err := json.Unmarshal([]byte(doc), &item); err != nil {
			return nil, fmt.Errorf("decode element %d: %w", i, err)
		}
		items = append(items, item)
	}
	return items, nil
}
