package utm

import (
	"fmt"
	"strings"
)

// snippetTemplate is the copyable client-side tracker. It resolves the
// page's utm_* parameters to a stored record id, posts a visit event,
// and exposes window.trackUtmConversion for the host site to call.
const snippetTemplate = `(function () {
  var API = "%[1]s/api/v1/projects/%[2]d/utm";
  var params = new URLSearchParams(window.location.search);
  var utm = {
    source: params.get("utm_source") || "",
    medium: params.get("utm_medium") || "",
    campaign: params.get("utm_campaign") || "",
    term: params.get("utm_term") || "",
    content: params.get("utm_content") || ""
  };
  if (!utm.source && !utm.medium && !utm.campaign) return;

  var query = new URLSearchParams(utm).toString();
  fetch(API + "/resolve?" + query)
    .then(function (res) { return res.ok ? res.json() : null; })
    .then(function (record) {
      if (!record || !record.id) return;
      window.__utmRecordId = record.id;
      fetch(API + "/" + record.id + "/track", {
        method: "POST",
        headers: { "Content-Type": "application/json" },
        body: JSON.stringify({ event: "visit" })
      });
    });

  window.trackUtmConversion = function () {
    if (!window.__utmRecordId) return;
    fetch(API + "/" + window.__utmRecordId + "/track", {
      method: "POST",
      headers: { "Content-Type": "application/json" },
      body: JSON.stringify({ event: "conversion" })
    });
  };
})();
`

// Snippet renders the tracking script for one project against the given
// API base URL.
func Snippet(baseURL string, projectID uint) string {
	baseURL = strings.TrimRight(baseURL, "/")
	if baseURL != "" && !strings.Contains(baseURL, "://") {
		baseURL = "https://" + baseURL
	}

	return fmt.Sprintf(snippetTemplate, baseURL, projectID)
}
