// Package drive rewrites Google Drive sharing links into direct
// download links.
package drive

import (
	"regexp"
	"strings"
)

const downloadPrefix = "https://drive.google.com/uc?export=download&id="

// Patterns are tried in order; the first capture wins. The generic
// id= query parameter comes last so that it only fires when none of
// the path-based shapes matched.
var filePatterns = []*regexp.Regexp{
	regexp.MustCompile(`/document/d/([a-zA-Z0-9_-]+)`),     // Google Docs
	regexp.MustCompile(`/spreadsheets/d/([a-zA-Z0-9_-]+)`), // Google Sheets
	regexp.MustCompile(`/presentation/d/([a-zA-Z0-9_-]+)`), // Google Slides
	regexp.MustCompile(`/file/d/([a-zA-Z0-9_-]+)`),         // Drive files
	regexp.MustCompile(`[?&]id=([a-zA-Z0-9_-]+)`),          // open?id={id}
}

// ToDirectDownloadLink converts a Google Drive URL to a direct
// download link. The second return value is false when the input does
// not look like any known share-link shape; callers keep the original
// URL in that case. The function never fails on malformed input.
//
// Apply this once at write time: the canonical output itself carries
// an id= parameter, so re-running it is a no-op fixpoint, not an error.
func ToDirectDownloadLink(driveURL string) (string, bool) {
	if driveURL == "" {
		return "", false
	}
	for _, re := range filePatterns {
		if m := re.FindStringSubmatch(driveURL); m != nil {
			return downloadPrefix + m[1], true
		}
	}
	return "", false
}

// IsGoogleDriveURL reports whether the URL belongs to one of the two
// Google Drive hostnames. Used for UI hinting only; normalization does
// not depend on it.
func IsGoogleDriveURL(url string) bool {
	return strings.Contains(url, "drive.google.com") || strings.Contains(url, "docs.google.com")
}
