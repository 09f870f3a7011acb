// Package codeblock enumerates fenced code blocks in a markdown document.
// It is inspection tooling only; the strip transform never goes through it.
package codeblock

// Block describes a single fenced code block.
type Block struct {
	Lang      string
	Meta      Meta
	Code      []byte
	StartLine int
	EndLine   int
}

type Blocks []*Block
