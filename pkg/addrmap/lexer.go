package addrmap

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// reportLexer tokenizes one report line. The catch-all Punct rule keeps
// lexing total: lines full of tool chatter produce token soup instead of
// lex errors, and the sequence check in the parser rejects them.
var reportLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Space", Pattern: `[ \t]+`},
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Dash", Pattern: `-`},
	{Name: "Word", Pattern: `[A-Za-z][A-Za-z0-9_]*`},
	{Name: "Punct", Pattern: `.`},
})

var reportSymbols = reportLexer.Symbols()

var (
	tokSpace = reportSymbols["Space"]
	tokInt   = reportSymbols["Int"]
	tokDash  = reportSymbols["Dash"]
	tokWord  = reportSymbols["Word"]
)
