package utm

import (
	"net/url"
	"strings"
)

// Params are the conventional UTM query parameters, in the order they
// are appended to a link: source, medium, campaign, term, content.
type Params struct {
	Source   string
	Medium   string
	Campaign string
	Term     string
	Content  string
}

// ordered returns the key/value pairs in the fixed UTM order, skipping
// empty values.
func (p Params) ordered() [][2]string {
	pairs := [][2]string{
		{"utm_source", p.Source},
		{"utm_medium", p.Medium},
		{"utm_campaign", p.Campaign},
		{"utm_term", p.Term},
		{"utm_content", p.Content},
	}

	kept := pairs[:0]
	for _, pair := range pairs {
		if pair[1] != "" {
			kept = append(kept, pair)
		}
	}

	return kept
}

// BuildURL constructs an absolute tracking link from a base website URL
// and the given UTM parameters. A schemeless base gets "https://"
// prefixed. An unparseable base yields "" rather than an error; link
// building must never fail a page render.
func BuildURL(base string, params Params) string {
	base = strings.TrimSpace(base)
	if base == "" {
		return ""
	}

	if !strings.Contains(base, "://") {
		base = "https://" + base
	}

	u, err := url.Parse(base)
	if err != nil || u.Host == "" {
		return ""
	}

	if u.Path == "" {
		u.Path = "/"
	}

	// url.Values.Encode sorts keys alphabetically; assemble by hand so
	// the source, medium, campaign, term, content order stays stable.
	var sb strings.Builder
	for _, pair := range params.ordered() {
		if sb.Len() > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(pair[0])
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(pair[1]))
	}

	// Any query already on the base URL stays ahead of the UTM pairs.
	existing := u.Query()
	for _, pair := range params.ordered() {
		existing.Del(pair[0])
	}
	if len(existing) > 0 {
		u.RawQuery = existing.Encode() + "&" + sb.String()
	} else {
		u.RawQuery = sb.String()
	}

	return u.String()
}
