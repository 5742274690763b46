package useragent

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	"golang.org/x/text/cases"
)

// UserAgent holds a User-Agent string together with its classification.
// The classification is resolved once, when the value is created.
type UserAgent struct {
	userAgent string
	platform  Platform
	browser   Browser
	mobile    bool
}

// New classifies ua. Any string is valid input: content that no rule
// recognizes resolves to PlatformUnknown and BrowserUnknown.
func New(ua string) UserAgent {
	platform := MatchPlatform(ua)
	return UserAgent{
		userAgent: ua,
		platform:  platform,
		browser:   MatchBrowser(ua),
		mobile:    isMobile(ua, platform),
	}
}

// Parse classifies a dynamically typed value, e.g. a decoded JSON field.
// Values whose kind is not string are rejected with *InvalidInputKindError
// before any matching runs.
func Parse(v any) (UserAgent, error) {
	switch s := v.(type) {
	case string:
		return New(s), nil
	case nil:
		return UserAgent{}, &InvalidInputKindError{Kind: "nil"}
	}

	// Named string types are still strings
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.String {
		return New(rv.String()), nil
	}
	return UserAgent{}, &InvalidInputKindError{Kind: rv.Kind().String()}
}

// isMobile treats Android and iOS as mobile, except iPads.
func isMobile(ua string, platform Platform) bool {
	if platform != PlatformAndroid && platform != PlatformIOS {
		return false
	}
	return !strings.Contains(cases.Fold().String(ua), "ipad")
}

// String returns the raw user agent string
func (ua UserAgent) String() string { return ua.userAgent }

// UserAgent returns the raw user agent string
func (ua UserAgent) UserAgent() string { return ua.userAgent }

// Platform returns the resolved platform
func (ua UserAgent) Platform() Platform {
	if ua.platform == "" {
		return PlatformUnknown
	}
	return ua.platform
}

// Browser returns the resolved browser
func (ua UserAgent) Browser() Browser {
	if ua.browser == "" {
		return BrowserUnknown
	}
	return ua.browser
}

// IsMobile returns true for Android and iOS user agents that are not iPads.
func (ua UserAgent) IsMobile() bool { return ua.mobile }

// IsDesktop returns true whenever IsMobile is false, unknown platforms included.
func (ua UserAgent) IsDesktop() bool { return !ua.mobile }

// Attr looks up one attribute by name. The set of names is fixed:
// user_agent, platform, browser, mobile and desktop.
func (ua UserAgent) Attr(name string) (any, error) {
	switch name {
	case AttrUserAgent, "userAgent":
		return ua.UserAgent(), nil
	case AttrPlatform:
		return ua.Platform(), nil
	case AttrBrowser:
		return ua.Browser(), nil
	case AttrMobile:
		return ua.IsMobile(), nil
	case AttrDesktop:
		return ua.IsDesktop(), nil
	}
	return nil, &UnknownAttributeError{Name: name}
}

// Fields is the serializable view of a classification.
type Fields struct {
	UserAgent string   `json:"user_agent" yaml:"user_agent"`
	Platform  Platform `json:"platform" yaml:"platform"`
	Browser   Browser  `json:"browser" yaml:"browser"`
	Mobile    bool     `json:"mobile" yaml:"mobile"`
	Desktop   bool     `json:"desktop" yaml:"desktop"`
}

// Fields returns the classification as a plain struct
func (ua UserAgent) Fields() Fields {
	return Fields{
		UserAgent: ua.UserAgent(),
		Platform:  ua.Platform(),
		Browser:   ua.Browser(),
		Mobile:    ua.IsMobile(),
		Desktop:   ua.IsDesktop(),
	}
}

func (ua UserAgent) MarshalJSON() ([]byte, error) { return json.Marshal(ua.Fields()) }

func (ua UserAgent) MarshalYAML() (any, error) { return ua.Fields(), nil }

// Summary returns a short human-readable description for logs,
// e.g. "google-chrome on mac (desktop)".
func (ua UserAgent) Summary() string {
	formFactor := "desktop"
	if ua.IsMobile() {
		formFactor = "mobile"
	}
	if !ua.Browser().Known() && !ua.Platform().Known() {
		return "unknown client (" + formFactor + ")"
	}
	return fmt.Sprintf("%s on %s (%s)", ua.Browser(), ua.Platform(), formFactor)
}
