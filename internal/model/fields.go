package model

import (
	"bytes"
	"encoding/json"

	"github.com/rotisserie/eris"
)

// Fields is an insertion-ordered set of extracted key/value pairs.
// Keys are unique; the first Set wins the position, later Sets for the
// same key overwrite the value in place. Ordering makes digests and
// stored JSON deterministic across runs.
type Fields struct {
	keys   []string
	values map[string]string
}

// NewFields returns an empty field set.
func NewFields() Fields {
	return Fields{values: make(map[string]string)}
}

// Set stores a key/value pair, appending the key on first use.
func (f *Fields) Set(key, value string) {
	if f.values == nil {
		f.values = make(map[string]string)
	}
	if _, ok := f.values[key]; !ok {
		f.keys = append(f.keys, key)
	}
	f.values[key] = value
}

// Get returns the value for key and whether it exists.
func (f Fields) Get(key string) (string, bool) {
	v, ok := f.values[key]
	return v, ok
}

// Keys returns the keys in insertion order.
func (f Fields) Keys() []string {
	out := make([]string, len(f.keys))
	copy(out, f.keys)
	return out
}

// Len returns the number of stored fields.
func (f Fields) Len() int {
	return len(f.keys)
}

// MarshalJSON renders the fields as a JSON object in insertion order.
func (f Fields) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range f.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		vb, err := json.Marshal(f.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON restores the fields from a JSON object. Key order
// follows the document order of the object.
func (f *Fields) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return eris.New("model: fields must be a JSON object")
	}

	*f = NewFields()
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key := keyTok.(string)

		var value string
		if err := dec.Decode(&value); err != nil {
			return err
		}
		f.Set(key, value)
	}

	_, err = dec.Token() // closing brace
	return err
}
