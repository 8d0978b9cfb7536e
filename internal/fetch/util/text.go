package util

import "strings"

// UserAgent is sent on every outbound request; the deal sites serve stripped
// pages to clients that don't look like a browser.
const UserAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome Safari"

// CleanText collapses whitespace and NBSPs scraped out of HTML.
func CleanText(s string) string {
	s = strings.ReplaceAll(s, "\u00a0", " ")
	return strings.Join(strings.Fields(s), " ")
}
