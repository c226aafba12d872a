package models

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// StringList accepts either a JSON array of strings or a single string.
// Any other shape (number, object, null) decodes to an empty list.
type StringList []string

func (l *StringList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		*l = nil
		return nil
	}

	switch data[0] {
	case '[':
		var raw []interface{}
		if err := json.Unmarshal(data, &raw); err != nil {
			*l = nil
			return nil
		}
		out := make([]string, 0, len(raw))
		for _, item := range raw {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		*l = out
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			*l = nil
			return nil
		}
		*l = []string{s}
	default:
		*l = nil
	}
	return nil
}

func (l StringList) MarshalJSON() ([]byte, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(l))
}

// FlexString accepts a JSON string. Any other shape (number, boolean,
// object, null) decodes to "" so downstream defaults apply.
type FlexString string

func (s *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '"' {
		*s = ""
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		*s = ""
		return nil
	}
	*s = FlexString(str)
	return nil
}

// FlexNumber accepts a JSON number or a numeric string ("4.7").
// Anything unparseable leaves Valid false; the raw token is kept so
// responses echo the field exactly as it arrived.
type FlexNumber struct {
	Raw   json.RawMessage
	Value float64
	Valid bool
}

func (n *FlexNumber) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	n.Raw = append(json.RawMessage(nil), data...)
	n.Value = 0
	n.Valid = false

	if len(data) == 0 || string(data) == "null" {
		n.Raw = nil
		return nil
	}

	text := string(data)
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return nil
		}
		text = strings.TrimSpace(s)
	}

	if v, err := strconv.ParseFloat(text, 64); err == nil {
		n.Value = v
		n.Valid = true
	}
	return nil
}

func (n FlexNumber) MarshalJSON() ([]byte, error) {
	if len(n.Raw) == 0 {
		return []byte("null"), nil
	}
	return n.Raw, nil
}
