package yamlsrc

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	eng "github.com/reoring/jsonresume/internal/engine"
)

func TestDecode_ScalarsStayText(t *testing.T) {
	v, err := Decode([]byte(`
work:
  - name: Acme
    startDate: 2021-06-15
    endDate: 2022
    current: true
    note: ~
`), eng.EnforceOptions{})
	require.NoError(t, err)
	work := v.(map[string]any)["work"].([]any)
	require.Len(t, work, 1)
	w := work[0].(map[string]any)
	assert.Equal(t, "2021-06-15", w["startDate"])
	assert.Equal(t, "2022", w["endDate"])
	assert.Equal(t, true, w["current"])
	assert.Contains(t, w, "note")
	assert.Nil(t, w["note"])
}

func TestDecode_Alias(t *testing.T) {
	v, err := Decode([]byte(`
base: &kw [Go, Rust]
skills:
  - keywords: *kw
`), eng.EnforceOptions{})
	require.NoError(t, err)
	sk := v.(map[string]any)["skills"].([]any)[0].(map[string]any)
	assert.Equal(t, []any{"Go", "Rust"}, sk["keywords"])
}

func TestDecode_AliasCycle(t *testing.T) {
	_, err := Decode([]byte("basics: &a\n  profiles: [*a]\n"), eng.EnforceOptions{})
	var ie eng.IssueError
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, "parse_error", ie.Code)
	assert.Equal(t, "/basics/profiles/0", ie.Path)
	assert.Equal(t, "alias cycle", ie.Message)
}

func TestDecode_AliasReusedAfterAnchor(t *testing.T) {
	v, err := Decode([]byte("a: &x {k: v}\nb: [*x, *x]\n"), eng.EnforceOptions{})
	require.NoError(t, err)
	b := v.(map[string]any)["b"].([]any)
	assert.Equal(t, []any{map[string]any{"k": "v"}, map[string]any{"k": "v"}}, b)
}

// aliasBomb builds levels of anchors where each level lists the previous one
// ten times, expanding to 10^levels leaves.
func aliasBomb(levels int) []byte {
	var sb strings.Builder
	sb.WriteString("l0: &l0 [x, x, x, x, x, x, x, x, x, x]\n")
	for i := 1; i < levels; i++ {
		ref := fmt.Sprintf("*l%d", i-1)
		fmt.Fprintf(&sb, "l%d: &l%d [%s]\n", i, i, strings.TrimSuffix(strings.Repeat(ref+", ", 10), ", "))
	}
	return []byte(sb.String())
}

func TestDecode_ExcessiveAliasing(t *testing.T) {
	_, err := Decode(aliasBomb(7), eng.EnforceOptions{})
	var ie eng.IssueError
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, "parse_error", ie.Code)
	assert.Equal(t, "excessive aliasing", ie.Message)

	// A handful of expansions stays within budget.
	v, err := Decode(aliasBomb(2), eng.EnforceOptions{})
	require.NoError(t, err)
	assert.Len(t, v.(map[string]any)["l1"].([]any), 10)
}

func TestDecode_MergeKeys(t *testing.T) {
	v, err := Decode([]byte(`
base: &base
  name: Acme
  url: https://acme.example
loc: &loc
  location: Remote
  name: Ignored
work:
  - <<: [*base, *loc]
    name: Acme Corp
`), eng.EnforceOptions{OnDuplicate: eng.DupError})
	require.NoError(t, err)
	w := v.(map[string]any)["work"].([]any)[0].(map[string]any)
	assert.Equal(t, map[string]any{
		"name":     "Acme Corp",
		"url":      "https://acme.example",
		"location": "Remote",
	}, w)
	assert.NotContains(t, w, "<<")
}

func TestDecode_MergeKeyNotMapping(t *testing.T) {
	_, err := Decode([]byte("work:\n  - <<: [a, b]\n"), eng.EnforceOptions{})
	var ie eng.IssueError
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, "/work/0", ie.Path)
}

func TestDecode_DuplicateKeyError(t *testing.T) {
	_, err := Decode([]byte("basics:\n  name: a\n  name: b\n"), eng.EnforceOptions{OnDuplicate: eng.DupError})
	var de *DuplicateKeyError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "/basics/name", de.Path)
	assert.Equal(t, 2, de.FirstLine)
	assert.Equal(t, 3, de.Line)
}

func TestDecode_MaxDepth(t *testing.T) {
	_, err := Decode([]byte("a:\n  b:\n    c: 1\n"), eng.EnforceOptions{MaxDepth: 2})
	var ie eng.IssueError
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, "/a/b", ie.Path)
}

func TestDecode_Empty(t *testing.T) {
	_, err := Decode([]byte(""), eng.EnforceOptions{})
	assert.ErrorIs(t, err, ErrEmptyDocument)
}
