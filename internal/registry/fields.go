package registry

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"sort"
)

// field is a known key and its value, in output order.
type field struct {
	key   string
	value any
}

func decodeObject(data []byte) (map[string]json.RawMessage, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// takeField decodes raw[key] into dst and removes it from raw. A missing
// key leaves dst untouched.
func takeField(raw map[string]json.RawMessage, key string, dst any) error {
	v, ok := raw[key]
	if !ok {
		return nil
	}
	delete(raw, key)
	if err := json.Unmarshal(v, dst); err != nil {
		return fmt.Errorf("decoding %q: %w", key, err)
	}
	return nil
}

// takePort accepts any integral JSON number, including 3000.0.
func takePort(raw map[string]json.RawMessage) (int, error) {
	var n *float64
	if err := takeField(raw, "port", &n); err != nil {
		return 0, err
	}
	if n == nil {
		return 0, nil
	}
	if *n != math.Trunc(*n) {
		return 0, fmt.Errorf("decoding \"port\": %v is not an integer", *n)
	}
	return int(*n), nil
}

func extraFields(raw map[string]json.RawMessage) map[string]json.RawMessage {
	if len(raw) == 0 {
		return nil
	}
	return raw
}

// encodeObject writes known in order, then the extra keys sorted. Extra
// keys that collide with a known key are skipped.
func encodeObject(known []field, extra map[string]json.RawMessage) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	seen := make(map[string]bool, len(known))
	write := func(key string, value []byte) error {
		if buf.Len() > 1 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(value)
		return nil
	}

	for _, f := range known {
		seen[f.key] = true
		v, err := json.Marshal(f.value)
		if err != nil {
			return nil, fmt.Errorf("encoding %q: %w", f.key, err)
		}
		if err := write(f.key, v); err != nil {
			return nil, err
		}
	}

	keys := make([]string, 0, len(extra))
	for k := range extra {
		if !seen[k] {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	for _, k := range keys {
		if err := write(k, extra[k]); err != nil {
			return nil, err
		}
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}
