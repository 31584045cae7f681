// Package expr parses and evaluates single Spark SQL scalar expressions such
// as substring_index('www.apache.org', '.', -2).
//
// The language is intentionally small: function calls, string literals
// ('it''s'), binary literals (X'4142'), integers, true, false, and NULL.
// Function and keyword names are case-insensitive.
package expr

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	sferrors "github.com/FocuswithJustin/sparkfn/core/errors"
	"github.com/FocuswithJustin/sparkfn/core/sparksql"
)

//nolint:govet // participle grammar tags are not standard struct tags
type node struct {
	Pos   lexer.Position
	Hex   *string    `  @Hex`
	Str   *string    `| @String`
	Int   *int64     `| @Int`
	Ident *identNode `| @@`
}

// identNode is either a keyword literal or a call when followed by "(".
//
//nolint:govet // participle grammar tags are not standard struct tags
type identNode struct {
	Name string  `@Ident`
	Call bool    `( @"("`
	Args []*node `  ( @@ ( "," @@ )* )? ")" )?`
}

var exprLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Hex", Pattern: `[xX]'[0-9A-Fa-f]*'`},
	{Name: "String", Pattern: `'(?:[^']|'')*'`},
	{Name: "Int", Pattern: `-?[0-9]+`},
	{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_]*`},
	{Name: "Punct", Pattern: `[(),]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var exprParser = participle.MustBuild[node](
	participle.Lexer(exprLexer),
	participle.Elide("Whitespace"),
)

// Expr is a parsed expression.
type Expr struct {
	source string
	root   *node
}

// Parse parses a single expression.
func Parse(s string) (*Expr, error) {
	src := strings.TrimSpace(s)
	if src == "" {
		return nil, sferrors.NewParse("expression", "", "empty expression")
	}
	root, err := exprParser.ParseString("", src)
	if err != nil {
		return nil, sferrors.NewParse("expression", "", fmt.Sprintf("%q: %v", src, err))
	}
	return &Expr{source: src, root: root}, nil
}

// String returns the trimmed source text.
func (e *Expr) String() string {
	return e.source
}

// FunctionName returns the lower-cased name of the outermost call, or
// "literal" when the expression is a bare literal.
func (e *Expr) FunctionName() string {
	if e.root.Ident != nil && e.root.Ident.Call {
		return strings.ToLower(e.root.Ident.Name)
	}
	return "literal"
}

// Eval evaluates the expression against reg. Arguments are evaluated before
// the call, so an inner error aborts the whole expression.
func (e *Expr) Eval(reg *sparksql.Registry) (sparksql.Value, error) {
	return eval(e.root, reg)
}

// Evaluate parses and evaluates s in one step.
func Evaluate(s string, reg *sparksql.Registry) (sparksql.Value, error) {
	e, err := Parse(s)
	if err != nil {
		return nil, err
	}
	return e.Eval(reg)
}

func eval(n *node, reg *sparksql.Registry) (sparksql.Value, error) {
	switch {
	case n.Hex != nil:
		return hexLiteral(*n.Hex)
	case n.Str != nil:
		return sparksql.NewStringValue(unquote(*n.Str)), nil
	case n.Int != nil:
		return sparksql.NewIntValue(*n.Int), nil
	case n.Ident != nil && n.Ident.Call:
		return call(n, reg)
	case n.Ident != nil:
		return keyword(n)
	}
	return nil, sferrors.NewParse("expression", "", fmt.Sprintf("%s: empty node", n.Pos))
}

func call(n *node, reg *sparksql.Registry) (sparksql.Value, error) {
	fn, err := reg.Resolve(n.Ident.Name)
	if err != nil {
		return nil, err
	}
	args := make([]sparksql.Value, len(n.Ident.Args))
	for i, a := range n.Ident.Args {
		if args[i], err = eval(a, reg); err != nil {
			return nil, err
		}
	}
	return fn.Call(args)
}

func keyword(n *node) (sparksql.Value, error) {
	switch strings.ToLower(n.Ident.Name) {
	case "true":
		return sparksql.NewBoolValue(true), nil
	case "false":
		return sparksql.NewBoolValue(false), nil
	case "null":
		return sparksql.NewNullValue(), nil
	}
	return nil, sferrors.NewParse("expression", "",
		fmt.Sprintf("%s: unknown identifier %q", n.Pos, n.Ident.Name))
}

// unquote strips the surrounding quotes and collapses doubled quotes.
func unquote(s string) string {
	return strings.ReplaceAll(s[1:len(s)-1], "''", "'")
}

func hexLiteral(s string) (sparksql.Value, error) {
	digits := s[2 : len(s)-1]
	b, err := hex.DecodeString(digits)
	if err != nil {
		return nil, sferrors.NewValidation("binary literal", fmt.Sprintf("%s: %v", s, err))
	}
	return sparksql.NewBinaryValue(b), nil
}
