package canonical

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// Stringify serializes a value into canonical JSON: object keys are sorted
// lexicographically, array order is preserved, and primitives use standard
// JSON encoding. Two semantically equal values always produce the same
// string regardless of key insertion order.
func Stringify(value interface{}) (string, error) {
	normalized, err := normalize(value)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	if err := writeCanonical(&sb, normalized); err != nil {
		return "", err
	}

	return sb.String(), nil
}

// Hash returns the lowercase hex SHA-256 digest of the canonical
// serialization of value.
func Hash(value interface{}) (string, error) {
	s, err := Stringify(value)
	if err != nil {
		return "", err
	}

	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:]), nil
}

// normalize round-trips the value through encoding/json so struct tags apply
// and every node becomes a map, slice, json.Number, string, bool or nil.
// Numbers are kept as json.Number to avoid float64 precision loss.
func normalize(value interface{}) (interface{}, error) {
	raw, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal value: %w", err)
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var normalized interface{}
	if err := dec.Decode(&normalized); err != nil {
		return nil, fmt.Errorf("failed to normalize value: %w", err)
	}

	return normalized, nil
}

// writeCanonical writes an already-normalized value in canonical form.
func writeCanonical(sb *strings.Builder, value interface{}) error {
	switch v := value.(type) {
	case nil:
		sb.WriteString("null")

	case map[string]interface{}:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		sb.WriteByte('{')
		for i, k := range keys {
			if i > 0 {
				sb.WriteByte(',')
			}
			encodedKey, err := json.Marshal(k)
			if err != nil {
				return fmt.Errorf("failed to encode key %q: %w", k, err)
			}
			sb.Write(encodedKey)
			sb.WriteByte(':')
			if err := writeCanonical(sb, v[k]); err != nil {
				return err
			}
		}
		sb.WriteByte('}')

	case []interface{}:
		sb.WriteByte('[')
		for i, item := range v {
			if i > 0 {
				sb.WriteByte(',')
			}
			if err := writeCanonical(sb, item); err != nil {
				return err
			}
		}
		sb.WriteByte(']')

	case json.Number:
		sb.WriteString(v.String())

	default:
		// string or bool
		encoded, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("failed to encode primitive: %w", err)
		}
		sb.Write(encoded)
	}

	return nil
}
