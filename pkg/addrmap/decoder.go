package addrmap

import (
	"fmt"
	"strings"
)

// MissingFieldPolicy decides what a decoder does when the report never
// mentioned one of the fields it is asked to decode.
type MissingFieldPolicy int

const (
	// ZeroFill substitutes a zero-width spec for absent fields, so they
	// decode to 0 for every address. This matches the tolerant behavior
	// expected when driving a tool whose output varies by DRAM geometry.
	ZeroFill MissingFieldPolicy = iota

	// ErrorOnMissing rejects the mapping at decoder construction time,
	// naming every absent field. Decoding itself still never fails.
	ErrorOnMissing
)

func (p MissingFieldPolicy) String() string {
	switch p {
	case ZeroFill:
		return "zero-fill"
	case ErrorOnMissing:
		return "error-on-missing"
	default:
		return fmt.Sprintf("MissingFieldPolicy(%d)", int(p))
	}
}

// MissingFieldError reports which requested fields the mapping lacks.
type MissingFieldError struct {
	Fields []Field
}

func (e *MissingFieldError) Error() string {
	names := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		names[i] = string(f)
	}
	return fmt.Sprintf("addrmap: mapping lacks fields: %s", strings.Join(names, ", "))
}

// resolvedField pairs a field with the spec it decodes through.
type resolvedField struct {
	field Field
	spec  FieldSpec
}

// Decoder splits a physical address into DRAM coordinates using the bit
// ranges resolved from one Mapping. All resolution happens during
// construction; the decoder itself is an immutable value and Decode is a
// pure function over its input address.
type Decoder struct {
	fields []resolvedField
}

// NewDecoder resolves the canonical row/column/bank vocabulary against
// the mapping. See NewDecoderFields for the policy semantics.
func NewDecoder(m Mapping, policy MissingFieldPolicy) (*Decoder, error) {
	return NewDecoderFields(m, DefaultFields, policy)
}

// NewDecoderFields resolves an explicit ordered field list against the
// mapping. The order given here is the order DecodeFields emits values
// in. Fields absent from the mapping are zero-filled or rejected
// according to policy.
func NewDecoderFields(m Mapping, order []Field, policy MissingFieldPolicy) (*Decoder, error) {
	if len(order) == 0 {
		return nil, fmt.Errorf("addrmap: no fields to decode")
	}

	resolved := make([]resolvedField, 0, len(order))
	var missing []Field
	for _, f := range order {
		spec, ok := m.Lookup(f)
		if !ok {
			switch policy {
			case ZeroFill:
				spec = FieldSpec{}
			case ErrorOnMissing:
				missing = append(missing, f)
				continue
			default:
				return nil, fmt.Errorf("addrmap: unknown policy %v", policy)
			}
		}
		resolved = append(resolved, resolvedField{field: f, spec: spec})
	}
	if len(missing) > 0 {
		return nil, &MissingFieldError{Fields: missing}
	}

	return &Decoder{fields: resolved}, nil
}

// Fields returns the declared decode order.
func (d *Decoder) Fields() []Field {
	out := make([]Field, len(d.fields))
	for i, rf := range d.fields {
		out[i] = rf.field
	}
	return out
}

// DecodeFields extracts every resolved field from addr, in declared
// order. It never fails: a zero-filled field yields 0 for any address.
func (d *Decoder) DecodeFields(addr uint64) []FieldValue {
	out := make([]FieldValue, len(d.fields))
	for i, rf := range d.fields {
		out[i] = FieldValue{Field: rf.field, Value: rf.spec.Extract(addr)}
	}
	return out
}

// Decode extracts the canonical coordinates from addr. Fields outside
// the row/column/bank vocabulary are decoded but not represented here;
// use DecodeFields for custom vocabularies.
func (d *Decoder) Decode(addr uint64) Coordinates {
	var c Coordinates
	for _, rf := range d.fields {
		switch rf.field {
		case FieldRow:
			c.Row = rf.spec.Extract(addr)
		case FieldColumn:
			c.Column = rf.spec.Extract(addr)
		case FieldBank:
			c.Bank = rf.spec.Extract(addr)
		}
	}
	return c
}
