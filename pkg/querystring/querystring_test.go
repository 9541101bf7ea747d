package querystring_test

import (
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/maxviazov/pagewindow/pkg/querystring"
	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	got := querystring.Parse("test[]=1&test[]=2&foobar=foo&foobar=bar&abc=123&def=%26hey%26")
	assert.Equal(t, url.Values{
		"test":   {"1", "2"},
		"foobar": {"foo", "bar"},
		"abc":    {"123"},
		"def":    {"&hey&"},
	}, got)
}

func TestParse_EdgeCases(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want url.Values
	}{
		{"empty", "", url.Values{}},
		{"leading question mark", "?a=1", url.Values{"a": {"1"}}},
		{"pair without value", "noval&a=1", url.Values{"noval": {""}, "a": {"1"}}},
		{"empty pairs skipped", "a=1&&b=2&", url.Values{"a": {"1"}, "b": {"2"}}},
		{"equals in value", "q=a=b", url.Values{"q": {"a=b"}}},
		{"plus is space", "q=a+b", url.Values{"q": {"a b"}}},
		{"bad escape kept", "q=%zz&a=1", url.Values{"q": {"%zz"}, "a": {"1"}}},
		{"encoded brackets", "sort%5B%5D=foo&sort%5B%5D=-bar", url.Values{"sort": {"foo", "-bar"}}},
		{"dojo name", "sort(%2Bfoo,-bar)", url.Values{"sort(+foo,-bar)": {""}}},
		{"mixed plain and bracket names", "s=a&s[]=b", url.Values{"s": {"a", "b"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, querystring.Parse(tt.raw))
		})
	}
}

func TestGet(t *testing.T) {
	params := querystring.Parse("foobar=foo&foobar=bar&abc=123&def=%26hey%26")
	assert.Equal(t, []string{"foo", "bar"}, querystring.Get(params, "foobar"))
	assert.Equal(t, []string{"123"}, querystring.Get(params, "abc"))
	assert.Equal(t, []string{}, querystring.Get(params, "not"))
}

func TestFromRequest(t *testing.T) {
	r := httptest.NewRequest("GET", "/items?sort=foo&sort=-bar&limit=5", nil)
	params := querystring.FromRequest(r)
	assert.Equal(t, []string{"foo", "-bar"}, params["sort"])
	assert.Equal(t, []string{"5"}, params["limit"])

	assert.Equal(t, url.Values{}, querystring.FromRequest(nil))
}
