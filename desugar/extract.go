// Package desugar implements the grammar-description loader of spec §4.1
// (component C2): it turns a grammar document — extracted from a literate
// Markdown file or read as a bare TOML document — into a grammar.Grammar,
// lowering the extended constructs (optional, repeat, choice, group,
// ordered-by-precedence) into plain BNF over fresh auxiliary collapsible
// variables.
package desugar

import (
	"io"
	"strings"

	"github.com/gomarkdown/markdown"
	mkast "github.com/gomarkdown/markdown/ast"
	mkparser "github.com/gomarkdown/markdown/parser"
)

// fencedLang is the code-fence info-string that marks a block as grammar
// source inside a literate Markdown document.
const fencedLang = "kang-grammar"

type fenceScanner struct{}

func (fenceScanner) RenderNode(w io.Writer, node mkast.Node, entering bool) mkast.WalkStatus {
	if !entering {
		return mkast.GoToNext
	}
	block, ok := node.(*mkast.CodeBlock)
	if !ok || block == nil {
		return mkast.GoToNext
	}
	if strings.ToLower(strings.TrimSpace(string(block.Info))) == fencedLang {
		w.Write(block.Literal)
	}
	return mkast.GoToNext
}

func (fenceScanner) RenderHeader(io.Writer, mkast.Node) {}
func (fenceScanner) RenderFooter(io.Writer, mkast.Node) {}

// ExtractFenced pulls every ```kang-grammar fenced code block out of a
// Markdown document, in document order, and concatenates their contents.
// This lets a grammar be authored as part of a literate spec document rather
// than as a standalone file.
func ExtractFenced(mdText []byte) []byte {
	doc := markdown.Parse(mdText, mkparser.New())
	return markdown.Render(doc, fenceScanner{})
}
