package codeblock

import (
	"bytes"
	"regexp"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

var reInfo = regexp.MustCompile(`\s*(\w+)\s*(.*)\s*`)

// Scan parses source as markdown and calls fn for every fenced code block,
// in document order. The document is never modified.
func Scan(source []byte, fn func(*Block) error) error {
	parser := goldmark.DefaultParser()
	root := parser.Parse(text.NewReader(source)).OwnerDocument()

	return ast.Walk(root, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if entering || node.Kind() != ast.KindFencedCodeBlock {
			return ast.WalkContinue, nil
		}

		fcb, ok := node.(*ast.FencedCodeBlock)
		if !ok {
			return ast.WalkContinue, nil
		}

		block, err := extract(fcb, source)
		if err != nil {
			return ast.WalkStop, err
		}

		if err := fn(block); err != nil {
			return ast.WalkStop, err
		}

		return ast.WalkContinue, nil
	})
}

// Parse returns all fenced code blocks of source.
func Parse(source []byte) (Blocks, error) {
	var blocks Blocks

	err := Scan(source, func(block *Block) error {
		blocks = append(blocks, block)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return blocks, nil
}

func extract(fcb *ast.FencedCodeBlock, source []byte) (*Block, error) {
	lang, meta, err := extractInfo(fcb, source)
	if err != nil {
		return nil, err
	}

	block := &Block{Lang: lang, Meta: meta, Code: extractCode(fcb, source)}
	block.StartLine, block.EndLine = extractLines(fcb, source)

	return block, nil
}

func extractLines(fcb *ast.FencedCodeBlock, source []byte) (int, int) {
	var startLine, endLine int

	lines := fcb.Lines()

	if fcb.Info != nil {
		startLine = lineAt(source, fcb.Info.Segment.Start)
	} else if lines.Len() > 0 {
		startLine = lineAt(source, lines.At(0).Start) - 1
	}

	if lines.Len() > 0 {
		endLine = lineAt(source, lines.At(lines.Len()-1).Stop)
	} else if startLine > 0 {
		endLine = startLine + 1
	}

	return startLine, endLine
}

func lineAt(source []byte, offset int) int {
	line := 1

	for i := 0; i < offset && i < len(source); i++ {
		if source[i] == '\n' {
			line++
		}
	}

	return line
}

func extractCode(fcb *ast.FencedCodeBlock, source []byte) []byte {
	var buff bytes.Buffer

	lines := fcb.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		buff.Write(seg.Value(source))
	}

	return buff.Bytes()
}

func extractInfo(fcb *ast.FencedCodeBlock, source []byte) (string, Meta, error) {
	if fcb.Info == nil {
		return "", nil, nil
	}

	subs := reInfo.FindSubmatch(fcb.Info.Text(source))
	if subs == nil {
		return "", nil, nil
	}

	meta, err := parseMeta(bytes.TrimSpace(subs[2]))
	if err != nil {
		return "", nil, err
	}

	return string(subs[1]), meta, nil
}
