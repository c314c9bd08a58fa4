package jsonresume_test

import (
	"testing"

	gojson "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/jsonresume"
)

func TestEncode_EmptyResume(t *testing.T) {
	out, err := jsonresume.Encode(jsonresume.Resume{})
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(out))
}

func TestEncode_EmptyCollectionsOmitted(t *testing.T) {
	r := jsonresume.Resume{
		Work:     []jsonresume.Work{},
		Skills:   []jsonresume.Skill{{Keywords: []jsonresume.Keyword{}}},
		Projects: []jsonresume.Project{{Features: []jsonresume.Feature{}, Roles: nil}},
	}
	out, err := jsonresume.Encode(r)
	require.NoError(t, err)
	assert.JSONEq(t, `{"skills":[{}],"projects":[{}]}`, string(out))
}

func TestEncode_LocationAlwaysEmitted(t *testing.T) {
	out, err := jsonresume.Encode(jsonresume.Resume{Basics: &jsonresume.Basics{}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"basics":{"location":{}}}`, string(out))
}

func TestEncode_RequiredScalarsAlwaysEmitted(t *testing.T) {
	r := jsonresume.Resume{
		Work:     []jsonresume.Work{{Positions: []jsonresume.Position{{}}}},
		Projects: []jsonresume.Project{{Features: []jsonresume.Feature{{}}}},
	}
	out, err := jsonresume.Encode(r)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"work":[{"positions":[{"title":""}]}],
		"projects":[{"features":[{"name":"","situation":"","task":"","action":"","result":""}]}]
	}`, string(out))
}

func TestEncode_WireNames(t *testing.T) {
	s := jsonresume.String
	r := jsonresume.Resume{
		Basics:       &jsonresume.Basics{Location: jsonresume.Location{PostalCode: s("1"), CountryCode: s("US")}},
		Work:         []jsonresume.Work{{StartDate: s("2020"), EndDate: s("2021")}},
		Education:    []jsonresume.Education{{StudyType: s("Bachelor")}},
		Publications: []jsonresume.Publication{{ReleaseDate: s("2019-01")}},
		Projects:     []jsonresume.Project{{Type: s("talk")}},
		Meta:         &jsonresume.Meta{LastModified: s("2020-01-01T00:00:00")},
	}
	out, err := jsonresume.Encode(r)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"basics":{"location":{"postalCode":"1","countryCode":"US"}},
		"work":[{"startDate":"2020","endDate":"2021"}],
		"education":[{"studyType":"Bachelor"}],
		"publications":[{"releaseDate":"2019-01"}],
		"projects":[{"type":"talk"}],
		"meta":{"lastModified":"2020-01-01T00:00:00"}
	}`, string(out))
}

func TestEncode_PresentEmptyStringIsKept(t *testing.T) {
	out, err := jsonresume.Encode(jsonresume.Resume{Meta: &jsonresume.Meta{Version: jsonresume.String("")}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"meta":{"version":""}}`, string(out))
}

func TestEncode_WrapperTransparency(t *testing.T) {
	r := jsonresume.Resume{Projects: []jsonresume.Project{{
		Highlights: []jsonresume.Highlight{"Increased profits by 20%"},
	}}}
	out, err := jsonresume.Encode(r)
	require.NoError(t, err)
	assert.JSONEq(t, `{"projects":[{"highlights":["Increased profits by 20%"]}]}`, string(out))

	back, err := jsonresume.Decode(out)
	require.NoError(t, err)
	assert.Equal(t, []jsonresume.Highlight{"Increased profits by 20%"}, back.Projects[0].Highlights)
	assert.Equal(t, "Increased profits by 20%", back.Projects[0].Highlights[0].String())
}

func TestEncode_IndentIsSameDocument(t *testing.T) {
	r, err := jsonresume.Decode(loadSample(t))
	require.NoError(t, err)
	compact, err := jsonresume.Encode(r)
	require.NoError(t, err)
	pretty, err := jsonresume.EncodeIndent(r, "", "  ")
	require.NoError(t, err)
	assert.JSONEq(t, string(compact), string(pretty))
	assert.Contains(t, string(pretty), "\n  \"basics\"")
}

func TestRoundTrip_Sample(t *testing.T) {
	r, err := jsonresume.Decode(loadSample(t))
	require.NoError(t, err)

	out, err := jsonresume.Encode(r)
	require.NoError(t, err)
	back, err := jsonresume.Decode(out)
	require.NoError(t, err)

	assert.True(t, r.Equal(back))
	assert.Equal(t, r, back)
}

func TestRoundTrip_DropsOnlyUnknownKeys(t *testing.T) {
	sample := loadSample(t)
	r, err := jsonresume.Decode(sample)
	require.NoError(t, err)
	out, err := jsonresume.Encode(r)
	require.NoError(t, err)

	var in, got map[string]any
	require.NoError(t, gojson.Unmarshal(sample, &in))
	require.NoError(t, gojson.Unmarshal(out, &got))
	delete(in["work"].([]any)[0].(map[string]any), "x-internal-id")
	assert.Equal(t, in, got)
}

func TestEqual(t *testing.T) {
	a := jsonresume.Resume{Work: []jsonresume.Work{{Highlights: nil}}}
	b := jsonresume.Resume{Work: []jsonresume.Work{{Highlights: []jsonresume.Highlight{}}}}
	assert.True(t, a.Equal(b))

	c := jsonresume.Resume{Work: []jsonresume.Work{{Name: jsonresume.String("")}}}
	assert.False(t, a.Equal(c))

	d := jsonresume.Resume{Work: []jsonresume.Work{{Name: jsonresume.String("")}}}
	assert.True(t, c.Equal(d))

	assert.False(t, jsonresume.Resume{}.Equal(jsonresume.Resume{Basics: &jsonresume.Basics{}}))
}

func TestWrapperStrings(t *testing.T) {
	assert.Equal(t, "a", jsonresume.Highlight("a").String())
	assert.Equal(t, "b", jsonresume.Course("b").String())
	assert.Equal(t, "c", jsonresume.Keyword("c").String())
	assert.Equal(t, "d", jsonresume.Duty("d").String())
	assert.Equal(t, "e", jsonresume.Profit("e").String())
	assert.Equal(t, "f", jsonresume.Role("f").String())
}
