package addrmap

// Field names one decoded DRAM coordinate, e.g. "row".
type Field string

// Canonical fields reported by DRAM address-mapping tools.
const (
	FieldRow    Field = "row"
	FieldColumn Field = "column"
	FieldBank   Field = "bank"
)

// DefaultFields is the declared decode order: row first, then column,
// then bank. Decoders resolve and emit fields in this order so results
// are positionally stable across calls.
var DefaultFields = []Field{FieldRow, FieldColumn, FieldBank}

// FieldSpec locates one field inside a physical address.
type FieldSpec struct {
	Offset uint // Bit position of the field's LSB
	Width  uint // Number of bits belonging to the field
}

// Mask returns a mask of Width low-order bits. A zero-width spec masks
// everything away; widths of 64 or more cover the full address.
func (s FieldSpec) Mask() uint64 {
	return uint64(1)<<s.Width - 1
}

// Extract pulls the field's bits out of value: shift right by Offset,
// then mask to Width bits. Bits beyond the 64-bit address simply do not
// exist and read as zero, so specs that reach past bit 63 decode
// deterministically rather than overflowing.
func (s FieldSpec) Extract(value uint64) uint64 {
	return value >> s.Offset & s.Mask()
}

// Mapping is the result of parsing one report: field name -> bit range.
// It is immutable after construction and safe for concurrent use.
type Mapping struct {
	fields map[Field]FieldSpec
}

// NewMapping builds a Mapping from explicit field specs. The input map
// is copied, so later mutation of it does not affect the Mapping.
func NewMapping(fields map[Field]FieldSpec) Mapping {
	copied := make(map[Field]FieldSpec, len(fields))
	for f, spec := range fields {
		copied[f] = spec
	}
	return Mapping{fields: copied}
}

// Lookup returns the spec for a field and whether the report mentioned it.
func (m Mapping) Lookup(f Field) (FieldSpec, bool) {
	spec, ok := m.fields[f]
	return spec, ok
}

// Len returns the number of distinct fields in the mapping.
func (m Mapping) Len() int {
	return len(m.fields)
}

// Equal reports whether two mappings contain the same fields with the
// same bit ranges.
func (m Mapping) Equal(other Mapping) bool {
	if len(m.fields) != len(other.fields) {
		return false
	}
	for f, spec := range m.fields {
		if got, ok := other.fields[f]; !ok || got != spec {
			return false
		}
	}
	return true
}

// FieldValue is one decoded field in declared order.
type FieldValue struct {
	Field Field
	Value uint64
}

// Coordinates is the decoded position of a physical address in DRAM.
type Coordinates struct {
	Row    uint64
	Column uint64
	Bank   uint64
}
