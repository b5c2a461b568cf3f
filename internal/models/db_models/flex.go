package db_models

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// FlexText is a free-form text field. LLM output and client payloads send
// numbers and booleans where text is expected; they are kept as their literal text.
type FlexText string

func (f *FlexText) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case isNull(data):
		*f = ""
	case data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexText(s)
	case data[0] == '{' || data[0] == '[':
		var buf bytes.Buffer
		if err := json.Compact(&buf, data); err != nil {
			return err
		}
		*f = FlexText(buf.String())
	default:
		// numbers and booleans
		*f = FlexText(data)
	}
	return nil
}

func (f FlexText) String() string { return string(f) }

// FlexInt accepts 3, 3.0 or "3".
type FlexInt int

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(strings.TrimSpace(string(data)), `"`)
	if raw == "" || raw == "null" {
		*f = 0
		return nil
	}
	if n, err := strconv.Atoi(raw); err == nil {
		*f = FlexInt(n)
		return nil
	}
	n, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		// labels like "Day 1" carry no usable number
		*f = 0
		return nil
	}
	*f = FlexInt(int(n))
	return nil
}

// Record is a loosely-typed recommendation (hotel, transfer, restaurant).
type Record map[string]any

// FlexList is a list of free-form text. A single value becomes a one-element list
// and non-string items are kept as their literal text.
type FlexList []string

func (l *FlexList) UnmarshalJSON(data []byte) error {
	items, err := listItems(data)
	if err != nil || items == nil {
		*l = nil
		return err
	}

	out := make(FlexList, 0, len(items))
	for _, item := range items {
		var text FlexText
		if err := text.UnmarshalJSON(item); err != nil {
			return err
		}
		out = append(out, string(text))
	}
	*l = out
	return nil
}

// Records accepts a list of objects, a single object, or bare names;
// a non-object item becomes {"name": <text>}.
type Records []Record

func (r *Records) UnmarshalJSON(data []byte) error {
	items, err := listItems(data)
	if err != nil || items == nil {
		*r = nil
		return err
	}

	out := make(Records, 0, len(items))
	for _, item := range items {
		if item[0] == '{' {
			var rec Record
			if err := json.Unmarshal(item, &rec); err != nil {
				return err
			}
			out = append(out, rec)
			continue
		}
		var text FlexText
		if err := text.UnmarshalJSON(item); err != nil {
			return err
		}
		out = append(out, Record{"name": string(text)})
	}
	*r = out
	return nil
}

// listItems splits a JSON array into its non-null elements. Any other non-null
// value is treated as a one-element list; null yields nil.
func listItems(data []byte) ([]json.RawMessage, error) {
	data = bytes.TrimSpace(data)
	if isNull(data) {
		return nil, nil
	}
	if data[0] != '[' {
		return []json.RawMessage{data}, nil
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	items := make([]json.RawMessage, 0, len(raw))
	for _, item := range raw {
		item = bytes.TrimSpace(item)
		if !isNull(item) {
			items = append(items, item)
		}
	}
	return items, nil
}

func isNull(data []byte) bool {
	return len(data) == 0 || bytes.Equal(data, []byte("null"))
}
