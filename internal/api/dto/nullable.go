package dto

import "encoding/json"

// The update endpoint distinguishes three wire states per field: absent
// (leave unchanged), explicit null (clear), and a value (replace). Plain
// pointers collapse absent and null, so these types track presence via
// UnmarshalJSON, which encoding/json invokes for null as well.

// NullableString is an optional, nullable string field.
type NullableString struct {
	Set   bool
	Value *string
}

func (n *NullableString) UnmarshalJSON(data []byte) error {
	n.Set = true
	if string(data) == "null" {
		n.Value = nil
		return nil
	}
	return json.Unmarshal(data, &n.Value)
}

// NullableInt64 is an optional, nullable integer field.
type NullableInt64 struct {
	Set   bool
	Value *int64
}

func (n *NullableInt64) UnmarshalJSON(data []byte) error {
	n.Set = true
	if string(data) == "null" {
		n.Value = nil
		return nil
	}
	return json.Unmarshal(data, &n.Value)
}

// NullableStringSlice is an optional string-list field. A null value decodes
// as present-and-empty: the caller asked for the list to be cleared.
type NullableStringSlice struct {
	Set   bool
	Value []string
}

func (n *NullableStringSlice) UnmarshalJSON(data []byte) error {
	n.Set = true
	if string(data) == "null" {
		n.Value = nil
		return nil
	}
	return json.Unmarshal(data, &n.Value)
}
