package backend

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// Text is a reply field rendered the way the page shows it: strings as-is,
// other truthy scalars in their printed form, and null, false, 0 and ""
// as empty, so callers fall back to their placeholder.
type Text string

func (t Text) String() string {
	return string(t)
}

// UnmarshalJSON accepts any JSON value for the field.
func (t *Text) UnmarshalJSON(b []byte) error {
	var v any
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		return err
	}
	*t = Text(printed(v))
	return nil
}

func printed(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case bool:
		if x {
			return "true"
		}
		return ""
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return x.String()
		}
		if f == 0 {
			return ""
		}
		return strconv.FormatFloat(f, 'f', -1, 64)
	case []any:
		parts := make([]string, len(x))
		for i, el := range x {
			if el == nil {
				continue
			}
			if b, ok := el.(bool); ok && !b {
				parts[i] = "false"
				continue
			}
			if n, ok := el.(json.Number); ok {
				if f, err := n.Float64(); err == nil && f == 0 {
					parts[i] = "0"
					continue
				}
			}
			parts[i] = printed(el)
		}
		return strings.Join(parts, ",")
	default:
		return "[object Object]"
	}
}
