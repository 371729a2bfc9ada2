package addrmap

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
)

// Parser extracts bit-range declarations from a tool report.
//
// Parsing is deliberately permissive: the report is treated as a stream
// of lines, and any line that is not a bit-range declaration is skipped
// without error. The tool prints plenty of progress chatter around the
// lines we care about.
type Parser struct {
	cfg *Config
}

// NewParser creates a parser with the given label vocabulary. A nil
// config selects DefaultConfig.
func NewParser(cfg *Config) (*Parser, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("addrmap: invalid config: %w", err)
	}
	return &Parser{cfg: cfg}, nil
}

// ParseReport parses a report using the default label vocabulary. It is
// the common case: a shortcut for NewParser(nil) followed by Parse.
func ParseReport(text string) Mapping {
	p, _ := NewParser(nil)
	return p.Parse(text)
}

// Parse scans the report text and returns the mapping of every
// recognized field. Parse is total: it never fails, it only finds fewer
// fields. When a label appears on several lines the last one wins.
func (p *Parser) Parse(text string) Mapping {
	fields := make(map[Field]FieldSpec)
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if field, spec, ok := p.matchLine(line); ok {
			fields[field] = spec
		}
	}
	return Mapping{fields: fields}
}

// ParseReader parses a report from a reader.
func (p *Parser) ParseReader(r io.Reader) (Mapping, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Mapping{}, fmt.Errorf("addrmap: read report: %w", err)
	}
	return p.Parse(string(data)), nil
}

// ParseFile parses a saved report from a file path.
func (p *Parser) ParseFile(filename string) (Mapping, error) {
	file, err := os.Open(filename)
	if err != nil {
		return Mapping{}, fmt.Errorf("addrmap: open report: %w", err)
	}
	defer file.Close()

	return p.ParseReader(file)
}

// matchLine checks one line against the declaration shape
//
//	<label> bits <start>-<end>
//
// with single-space separators and the range glued to its dash, exactly
// as the tool prints it. The label must be in the vocabulary and the
// range must satisfy start <= end and span at most 64 bits, since a
// wider field cannot describe a 64-bit address. Trailing text after the
// range is allowed. Any deviation means the line is not a declaration.
func (p *Parser) matchLine(line string) (Field, FieldSpec, bool) {
	lx, err := reportLexer.LexString("", line)
	if err != nil {
		return "", FieldSpec{}, false
	}

	var toks [7]lexer.Token
	n := 0
	for n < len(toks) {
		tok, err := lx.Next()
		if err != nil || tok.EOF() {
			break
		}
		toks[n] = tok
		n++
	}
	if n < len(toks) {
		return "", FieldSpec{}, false
	}

	field, known := p.cfg.Labels[toks[0].Value]
	if toks[0].Type != tokWord || !known {
		return "", FieldSpec{}, false
	}
	if toks[1].Type != tokSpace || toks[1].Value != " " {
		return "", FieldSpec{}, false
	}
	if toks[2].Type != tokWord || toks[2].Value != "bits" {
		return "", FieldSpec{}, false
	}
	if toks[3].Type != tokSpace || toks[3].Value != " " {
		return "", FieldSpec{}, false
	}
	if toks[4].Type != tokInt || toks[5].Type != tokDash || toks[6].Type != tokInt {
		return "", FieldSpec{}, false
	}

	start, err := strconv.ParseUint(toks[4].Value, 10, 64)
	if err != nil {
		return "", FieldSpec{}, false
	}
	end, err := strconv.ParseUint(toks[6].Value, 10, 64)
	if err != nil {
		return "", FieldSpec{}, false
	}
	if start > end {
		return "", FieldSpec{}, false
	}
	// A field wider than a 64-bit address cannot describe one. This also
	// keeps the width computation below from wrapping on the full
	// 0-18446744073709551615 range.
	if end-start >= 64 {
		return "", FieldSpec{}, false
	}

	spec := FieldSpec{
		Offset: uint(start),
		Width:  uint(end - start + 1),
	}
	return field, spec, true
}
