package utm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildURL(t *testing.T) {
	tests := []struct {
		name   string
		base   string
		params Params
		want   string
	}{
		{
			name:   "schemeless base gets https and root path",
			base:   "example.com",
			params: Params{Source: "google", Medium: "cpc", Campaign: "launch"},
			want:   "https://example.com/?utm_source=google&utm_medium=cpc&utm_campaign=launch",
		},
		{
			name:   "existing scheme is kept",
			base:   "http://example.com/landing",
			params: Params{Source: "newsletter"},
			want:   "http://example.com/landing?utm_source=newsletter",
		},
		{
			name:   "all five params in fixed order",
			base:   "https://example.com",
			params: Params{Source: "s", Medium: "m", Campaign: "c", Term: "t", Content: "x"},
			want:   "https://example.com/?utm_source=s&utm_medium=m&utm_campaign=c&utm_term=t&utm_content=x",
		},
		{
			name:   "empty params are dropped, order preserved",
			base:   "example.com",
			params: Params{Source: "google", Campaign: "launch"},
			want:   "https://example.com/?utm_source=google&utm_campaign=launch",
		},
		{
			name:   "values are query escaped",
			base:   "example.com",
			params: Params{Source: "google ads", Campaign: "q3/launch"},
			want:   "https://example.com/?utm_source=google+ads&utm_campaign=q3%2Flaunch",
		},
		{
			name:   "existing query params stay ahead of utm pairs",
			base:   "https://example.com/page?ref=abc",
			params: Params{Source: "google"},
			want:   "https://example.com/page?ref=abc&utm_source=google",
		},
		{
			name:   "base utm params are overridden, not duplicated",
			base:   "https://example.com/?utm_source=old",
			params: Params{Source: "new"},
			want:   "https://example.com/?utm_source=new",
		},
		{
			name:   "empty base yields empty link",
			base:   "   ",
			params: Params{Source: "google"},
			want:   "",
		},
		{
			name:   "unparseable base yields empty link",
			base:   "https://exa mple.com",
			params: Params{Source: "google"},
			want:   "",
		},
		{
			name:   "no params yields bare link",
			base:   "example.com",
			params: Params{},
			want:   "https://example.com/",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildURL(tt.base, tt.params)

			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParamsOrdered(t *testing.T) {
	p := Params{Source: "s", Content: "x"}

	got := p.ordered()

	assert.Equal(t, [][2]string{{"utm_source", "s"}, {"utm_content", "x"}}, got)
}
