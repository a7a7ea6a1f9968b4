package todo

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Codec defines the serialization contract for file-backed collections.
// Implement this interface to persist collections in alternative formats.
type Codec interface {
	// Marshal serializes a collection for persistence.
	Marshal(items []Item) ([]byte, error)

	// Unmarshal deserializes a persisted collection.
	Unmarshal(data []byte) ([]Item, error)

	// ContentType returns the MIME type for observability and debugging.
	ContentType() string
}

// JSONCodec implements Codec using encoding/json.
type JSONCodec struct{}

// Marshal serializes the collection as an indented JSON array.
func (JSONCodec) Marshal(items []Item) ([]byte, error) {
	return json.MarshalIndent(items, "", "  ")
}

// Unmarshal deserializes a JSON array into a collection.
func (JSONCodec) Unmarshal(data []byte) ([]Item, error) {
	var items []Item
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// ContentType returns the JSON MIME type.
func (JSONCodec) ContentType() string {
	return "application/json"
}

// Ensure JSONCodec implements Codec.
var _ Codec = JSONCodec{}

// YAMLCodec implements Codec using gopkg.in/yaml.v3.
type YAMLCodec struct{}

// Marshal serializes the collection as a YAML sequence.
func (YAMLCodec) Marshal(items []Item) ([]byte, error) {
	return yaml.Marshal(items)
}

// Unmarshal deserializes a YAML sequence into a collection.
func (YAMLCodec) Unmarshal(data []byte) ([]Item, error) {
	var items []Item
	if err := yaml.Unmarshal(data, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// ContentType returns the YAML MIME type.
func (YAMLCodec) ContentType() string {
	return "application/x-yaml"
}

// Ensure YAMLCodec implements Codec.
var _ Codec = YAMLCodec{}
