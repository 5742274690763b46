package useragent

import (
	"regexp"
	"strings"
)

// platformRule pairs a case-insensitive pattern with the platform it identifies.
type platformRule struct {
	pattern  *regexp.Regexp
	platform Platform
}

// browserRule pairs a case-sensitive token with the browser it identifies.
type browserRule struct {
	token   string
	browser Browser
}

// Platform rules in order of checking priority.
// Android must precede Linux since Android UAs carry "Linux" too.
var platformRules = []platformRule{
	{pattern: regexp.MustCompile(`(?i)Android`), platform: PlatformAndroid},
	{pattern: regexp.MustCompile(`(?i)linux`), platform: PlatformLinux},
	{pattern: regexp.MustCompile(`(?i)iPhone|iPod|iPad`), platform: PlatformIOS},
	{pattern: regexp.MustCompile(`(?i)macintosh|mac os x`), platform: PlatformMac},
	{pattern: regexp.MustCompile(`(?i)windows|win32`), platform: PlatformWindows},
	{pattern: regexp.MustCompile(`(?i)BlackBerry`), platform: PlatformBlackBerry},
	// Model-number only UAs, e.g. "BB10; Touch"
	{pattern: regexp.MustCompile(`(?i)BB[0-9]?[0-9]`), platform: PlatformBlackBerry},
}

// Browser rules in order of checking priority.
// Most UAs embed several browser tokens, so the more specific ones go first:
// "Opera Mini" before "Opera", and everything before "Chrome" and "Safari".
var browserRules = []browserRule{
	{token: "UCBrowser", browser: BrowserUC},
	{token: "Android", browser: BrowserAndroid},
	{token: "MSIE", browser: BrowserIE},
	{token: "Trident", browser: BrowserIE},
	{token: "BB10", browser: BrowserBlackBerry},
	{token: "Vivaldi", browser: BrowserVivaldi},
	{token: "Firefox", browser: BrowserFirefox},
	{token: "OPR", browser: BrowserOpera},
	{token: "Opera Mini", browser: BrowserOperaMini},
	{token: "Opera", browser: BrowserOpera},
	{token: "Chrome", browser: BrowserChrome},
	{token: "Safari", browser: BrowserSafari},
}

func (r platformRule) match(ua string) bool { return r.pattern.MatchString(ua) }

func (r browserRule) match(ua string) bool { return strings.Contains(ua, r.token) }

// MatchPlatform returns the platform of the first matching rule,
// or PlatformUnknown when none matches.
func MatchPlatform(ua string) Platform {
	for _, rule := range platformRules {
		if rule.match(ua) {
			return rule.platform
		}
	}
	return PlatformUnknown
}

// MatchBrowser returns the browser of the first rule whose token the UA contains,
// or BrowserUnknown when none matches. Matching is case-sensitive.
func MatchBrowser(ua string) Browser {
	for _, rule := range browserRules {
		if rule.match(ua) {
			return rule.browser
		}
	}
	return BrowserUnknown
}
