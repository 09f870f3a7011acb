// Package stripmd removes fenced code block delimiters from markdown text
// while preserving the enclosed content. Inline code spans are left untouched.
package stripmd

import "regexp"

// A fenced block is an opening triple backtick, an optional language tag
// (no newlines, no backticks), a newline, then the shortest run of any
// characters up to the next triple backtick. The tag class excludes
// backticks, so an opening line such as "```a`b" is not a fence and
// inline spans never match (they lack the newline after the opening).
var reFenced = regexp.MustCompile("(?s)```[^\n`]*\n(.*?)```")

// StripCodeblocks replaces every fenced code block in text with its raw
// content, dropping the fences and the language tag. Blocks are matched
// left to right, non-overlapping, non-greedy: the first triple backtick
// after an opening fence closes it. Text outside fenced blocks, including
// single and double backtick inline code, is copied through unchanged.
// An unterminated fence passes through as-is.
func StripCodeblocks(text string) string {
	return reFenced.ReplaceAllString(text, "$1")
}
