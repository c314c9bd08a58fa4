package engine

import (
	"io"
	"testing"

	gojson "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sliceSource struct {
	toks []Token
	i    int
}

func (s *sliceSource) NextToken() (Token, error) {
	if s.i >= len(s.toks) {
		return Token{}, io.EOF
	}
	t := s.toks[s.i]
	s.i++
	return t, nil
}

func key(k string) Token          { return Token{Kind: KindKey, String: k} }
func str(v string) Token          { return Token{Kind: KindString, String: v} }
func tk(k Kind) Token             { return Token{Kind: k} }
func num(n string) Token          { return Token{Kind: KindNumber, Number: n} }
func src(t ...Token) *sliceSource { return &sliceSource{toks: t} }

func TestDecodeDocument_Tree(t *testing.T) {
	s := src(
		tk(KindBeginObject),
		key("name"), str("Ada"),
		key("tags"), tk(KindBeginArray), str("x"), num("1"), tk(KindEndArray),
		key("empty"), tk(KindBeginArray), tk(KindEndArray),
		key("none"), tk(KindNull),
		tk(KindEndObject),
	)
	v, err := DecodeDocument(s)
	require.NoError(t, err)
	m, ok := v.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Ada", m["name"])
	assert.Equal(t, []any{"x", gojson.Number("1")}, m["tags"])
	assert.Nil(t, m["empty"])
	assert.Contains(t, m, "none")
}

func TestDecodeDocument_TrailingData(t *testing.T) {
	_, err := DecodeDocument(src(tk(KindBeginObject), tk(KindEndObject), str("x")))
	assert.ErrorIs(t, err, ErrTrailingData)
}

func TestDecodeDocument_Truncated(t *testing.T) {
	_, err := DecodeDocument(src(tk(KindBeginObject), key("a")))
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestEnforce_DuplicateKeyError(t *testing.T) {
	s := WrapWithEnforcement(src(
		tk(KindBeginArray),
		tk(KindBeginObject), key("a"), num("1"), key("a"), num("2"), tk(KindEndObject),
		tk(KindEndArray),
	), EnforceOptions{OnDuplicate: DupError})
	_, err := DecodeDocument(s)
	var ie IssueError
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, "duplicate_key", ie.Code)
	assert.Equal(t, "/0/a", ie.Path)
}

func TestEnforce_DuplicateKeyWarn(t *testing.T) {
	var got []SimpleIssue
	s := WrapWithEnforcement(src(
		tk(KindBeginObject), key("a"), num("1"), key("a"), num("2"), tk(KindEndObject),
	), EnforceOptions{OnDuplicate: DupWarn, IssueSink: func(si SimpleIssue) { got = append(got, si) }})
	v, err := DecodeDocument(s)
	require.NoError(t, err)
	assert.Equal(t, gojson.Number("2"), v.(map[string]any)["a"])
	require.Len(t, got, 1)
	assert.Equal(t, "/a", got[0].Path)
}

func TestEnforce_MaxDepth(t *testing.T) {
	s := WrapWithEnforcement(src(
		tk(KindBeginObject), key("a"),
		tk(KindBeginObject), key("b"),
		tk(KindBeginObject), key("c"), num("1"), tk(KindEndObject),
		tk(KindEndObject),
		tk(KindEndObject),
	), EnforceOptions{MaxDepth: 2})
	_, err := DecodeDocument(s)
	var ie IssueError
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, "/a/b", ie.Path)
}

func TestEnforceOptions_Enabled(t *testing.T) {
	assert.False(t, EnforceOptions{}.Enabled())
	assert.True(t, EnforceOptions{MaxDepth: 1}.Enabled())
	assert.True(t, EnforceOptions{OnDuplicate: DupWarn}.Enabled())
}
