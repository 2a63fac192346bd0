package desugar

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/jkugelman/kang/grammar"
)

// DecodeDocument parses raw TOML grammar source into a Document.
func DecodeDocument(source []byte) (*Document, error) {
	var doc Document
	if _, err := toml.Decode(string(source), &doc); err != nil {
		return nil, fmt.Errorf("desugar: decoding grammar document: %w", err)
	}
	return &doc, nil
}

// Load decodes raw TOML grammar source and desugars it into a grammar.Grammar.
// It does not call Validate on the result; callers should do so before
// handing the grammar to the table builder.
func Load(source []byte) (*grammar.Grammar, error) {
	doc, err := DecodeDocument(source)
	if err != nil {
		return nil, err
	}
	return Desugar(doc)
}

// LoadFromMarkdown extracts fenced grammar blocks from a literate Markdown
// document (see ExtractFenced) and desugars the concatenated result.
func LoadFromMarkdown(mdText []byte) (*grammar.Grammar, error) {
	return Load(ExtractFenced(mdText))
}
