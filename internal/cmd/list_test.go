package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const listSample = "Intro\n\n" +
	"```go file=main.go\npackage main\n```\n\n" +
	"```ruby\nputs 1\n```\n"

func TestListBlocks(t *testing.T) {
	path := writeTemp(t, "doc.md", listSample)

	stdout, _, err := run(t, "", "list", path)
	require.NoError(t, err)

	assert.Contains(t, stdout, "LANG")
	assert.Contains(t, stdout, "go")
	assert.Contains(t, stdout, "main.go")
	assert.Contains(t, stdout, "ruby")
	assert.Contains(t, stdout, "3-5")
}

func TestListLangFilter(t *testing.T) {
	path := writeTemp(t, "doc.md", listSample)

	stdout, _, err := run(t, "", "list", "--lang", "ruby", path)
	require.NoError(t, err)

	assert.Contains(t, stdout, "ruby")
	assert.NotContains(t, stdout, "main.go")
}

func TestListLangGlob(t *testing.T) {
	path := writeTemp(t, "doc.md", listSample)

	stdout, _, err := run(t, "", "list", "-l", "ru*", path)
	require.NoError(t, err)

	assert.Contains(t, stdout, "ruby")
	assert.NotContains(t, stdout, "main.go")
}

func TestListStdin(t *testing.T) {
	stdout, _, err := run(t, listSample, "list")
	require.NoError(t, err)

	assert.Contains(t, stdout, "<stdin>")
	assert.Contains(t, stdout, "ruby")
}

func TestListBadLangPattern(t *testing.T) {
	_, _, err := run(t, "", "list", "--lang", "[oops", "--", "ignored.md")
	assert.Error(t, err)
}
