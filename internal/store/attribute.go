package store

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// AttributeKind tags the scalar type held by an Attribute.
type AttributeKind int

// Attribute kinds. Composite covers lists, maps and sets, which this package
// never writes but may encounter when reading a record written by someone else.
const (
	KindString AttributeKind = iota + 1
	KindNumber
	KindBinary
	KindBool
	KindNull
	KindComposite
)

func (k AttributeKind) String() string {
	switch k {
	case KindString:
		return "S"
	case KindNumber:
		return "N"
	case KindBinary:
		return "B"
	case KindBool:
		return "BOOL"
	case KindNull:
		return "NULL"
	case KindComposite:
		return "composite"
	default:
		return fmt.Sprintf("AttributeKind(%d)", int(k))
	}
}

// Attribute is a single typed value in an Item.
// The zero value is invalid; use the constructors.
type Attribute struct {
	kind    AttributeKind
	text    string
	binary  []byte
	boolean bool
}

// S returns a string attribute.
func S(value string) Attribute {
	return Attribute{kind: KindString, text: value}
}

// N returns a number attribute. Numbers travel as their decimal text.
func N(value string) Attribute {
	return Attribute{kind: KindNumber, text: value}
}

// B returns a binary attribute.
func B(value []byte) Attribute {
	return Attribute{kind: KindBinary, binary: append([]byte(nil), value...)}
}

// Bool returns a boolean attribute.
func Bool(value bool) Attribute {
	return Attribute{kind: KindBool, boolean: value}
}

// Null returns a null attribute.
func Null() Attribute {
	return Attribute{kind: KindNull}
}

// Composite returns an opaque attribute standing for a list, map or set.
func Composite() Attribute {
	return Attribute{kind: KindComposite}
}

// Kind returns the attribute's tag.
func (a Attribute) Kind() AttributeKind {
	return a.kind
}

// AsString returns the value when the attribute is string-typed.
func (a Attribute) AsString() (string, bool) {
	if a.kind != KindString {
		return "", false
	}
	return a.text, true
}

// AsNumber returns the decimal text when the attribute is number-typed.
func (a Attribute) AsNumber() (string, bool) {
	if a.kind != KindNumber {
		return "", false
	}
	return a.text, true
}

// AsBinary returns a copy of the bytes when the attribute is binary.
func (a Attribute) AsBinary() ([]byte, bool) {
	if a.kind != KindBinary {
		return nil, false
	}
	return append([]byte(nil), a.binary...), true
}

// AsBool returns the value when the attribute is boolean.
func (a Attribute) AsBool() (bool, bool) {
	if a.kind != KindBool {
		return false, false
	}
	return a.boolean, true
}

// Equal reports whether two attributes have the same kind and value.
func (a Attribute) Equal(other Attribute) bool {
	return a.kind == other.kind &&
		a.text == other.text &&
		a.boolean == other.boolean &&
		bytes.Equal(a.binary, other.binary)
}

// attributeJSON mirrors the DynamoDB JSON shape of a scalar attribute.
type attributeJSON struct {
	S    *string `json:"S,omitempty"`
	N    *string `json:"N,omitempty"`
	B    []byte  `json:"B,omitempty"`
	BOOL *bool   `json:"BOOL,omitempty"`
	NULL *bool   `json:"NULL,omitempty"`
}

// MarshalJSON encodes the attribute as {"S":"..."}, {"N":"..."}, {"B":"..."},
// {"BOOL":...} or {"NULL":true}.
func (a Attribute) MarshalJSON() ([]byte, error) {
	var out attributeJSON
	switch a.kind {
	case KindString:
		out.S = &a.text
	case KindNumber:
		out.N = &a.text
	case KindBinary:
		out.B = a.binary
		if out.B == nil {
			out.B = []byte{}
		}
	case KindBool:
		out.BOOL = &a.boolean
	case KindNull:
		null := true
		out.NULL = &null
	default:
		return nil, fmt.Errorf("cannot encode attribute of kind %s", a.kind)
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes the DynamoDB JSON shape written by MarshalJSON.
func (a *Attribute) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decode attribute: %w", err)
	}
	if len(raw) != 1 {
		return fmt.Errorf("decode attribute: expected exactly one type tag, got %d", len(raw))
	}

	var in attributeJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return fmt.Errorf("decode attribute: %w", err)
	}

	switch {
	case in.S != nil:
		*a = S(*in.S)
	case in.N != nil:
		*a = N(*in.N)
	case in.BOOL != nil:
		*a = Bool(*in.BOOL)
	case in.NULL != nil:
		*a = Null()
	case raw["B"] != nil:
		*a = B(in.B)
	default:
		*a = Composite()
	}
	return nil
}

// Item is a record in the store's native weakly typed form.
type Item map[string]Attribute

// Clone returns a copy of the item. Attributes are immutable once built.
func (i Item) Clone() Item {
	if i == nil {
		return nil
	}
	clone := make(Item, len(i))
	for k, v := range i {
		clone[k] = v
	}
	return clone
}

// Equal reports whether both items hold the same keys with equal attributes.
func (i Item) Equal(other Item) bool {
	if len(i) != len(other) {
		return false
	}
	for k, v := range i {
		w, ok := other[k]
		if !ok || !v.Equal(w) {
			return false
		}
	}
	return true
}

// MarshalItem encodes an item as a DynamoDB-style JSON document.
func MarshalItem(item Item) ([]byte, error) {
	return json.Marshal(item)
}

// UnmarshalItem decodes a document produced by MarshalItem.
func UnmarshalItem(data []byte) (Item, error) {
	var item Item
	if err := json.Unmarshal(data, &item); err != nil {
		return nil, err
	}
	return item, nil
}
