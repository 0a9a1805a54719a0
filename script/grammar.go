// SPDX-License-Identifier: MIT

package script

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"

	"github.com/katalvlaran/trivertex/grid"
)

// Script is a parsed command sequence.
type Script struct {
	Commands []*Command `@@*`
}

// Command is one line of a script. Exactly one field is set.
type Command struct {
	Pos lexer.Position

	Image   *ImageCmd   `  "image" @@`
	Select  *SelectCmd  `| "select" @@`
	Link    *LinkCmd    `| "link" @@`
	Preview *PreviewCmd `| "preview" @@`
	Reset   bool        `| @"reset"`
	Show    bool        `| @"show"`
}

type ImageCmd struct {
	Size   int      `@Int`
	Colors []string `"{" @(Ident | String)* "}"`
}

type SelectCmd struct {
	Vertex int `@Int`
}

type LinkCmd struct {
	From int `@Int`
	To   int `@Int`
}

type PreviewCmd struct {
	Vertex int     `@Int`
	X      float64 `@(Float | Int)`
	Y      float64 `@(Float | Int)`
}

var scriptLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `#[^\n]*`},
	{Name: "String", Pattern: `"[^"\n]*"`},
	{Name: "Float", Pattern: `-?\d+\.\d+`},
	{Name: "Int", Pattern: `-?\d+`},
	{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_\-]*`},
	{Name: "Punct", Pattern: `[{}]`},
	{Name: "Whitespace", Pattern: `[ \t\r\n;]+`},
})

var parser = participle.MustBuild[Script](
	participle.Lexer(scriptLexer),
	participle.Elide("Comment", "Whitespace"),
	participle.Unquote("String"),
)

// Parse reads a script. name labels positions in error messages.
func Parse(name, src string) (*Script, error) {
	sc, err := parser.ParseString(name, src)
	if err != nil {
		return nil, errors.Wrapf(ErrSyntax, "%v", err)
	}
	return sc, nil
}

// Image returns the color table of the first image command.
// ok is false when the script has none.
func (sc *Script) Image() (t grid.ColorTable, ok bool, err error) {
	for _, cmd := range sc.Commands {
		if cmd.Image == nil {
			continue
		}
		cells := make([]grid.Color, len(cmd.Image.Colors))
		for i, c := range cmd.Image.Colors {
			cells[i] = grid.Color(c)
		}
		t, err = grid.NewColorTable(cmd.Image.Size, cells)
		if err != nil {
			return grid.ColorTable{}, false, errors.Wrapf(ErrBadImage, "%s: %v", cmd.Pos, err)
		}
		return t, true, nil
	}
	return grid.ColorTable{}, false, nil
}
