package ingest

import (
	"errors"
	"regexp"
)

// ErrBadSheetURL marks a link with no recognizable document id.
var ErrBadSheetURL = errors.New("spreadsheet link has no document id")

var (
	docIDRe = regexp.MustCompile(`/d/([a-zA-Z0-9-_]+)`)
	gidRe   = regexp.MustCompile(`[?&]gid=(\d+)`)
)

// ExportURL rewrites a shareable Google Sheets link into the direct
// xlsx export URL, carrying over the sheet selector (gid) if present.
func ExportURL(raw string) (string, error) {
	m := docIDRe.FindStringSubmatch(raw)
	if m == nil {
		return "", ErrBadSheetURL
	}
	url := "https://docs.google.com/spreadsheets/d/" + m[1] + "/export?format=xlsx"
	if g := gidRe.FindStringSubmatch(raw); g != nil {
		url += "&gid=" + g[1]
	}
	return url, nil
}
