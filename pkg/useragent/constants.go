package useragent

// Platform is a coarse operating-system or device family.
type Platform string

// Platform identifiers
const (
	// PlatformAndroid identifies Google Android devices
	PlatformAndroid Platform = "android"

	// PlatformLinux identifies desktop Linux distributions
	PlatformLinux Platform = "linux"

	// PlatformIOS identifies Apple iPhone, iPod and iPad devices
	PlatformIOS Platform = "ios"

	// PlatformMac identifies Apple macOS computers
	PlatformMac Platform = "mac"

	// PlatformWindows identifies Microsoft Windows
	PlatformWindows Platform = "windows"

	// PlatformBlackBerry identifies BlackBerry handhelds, including BB10 devices
	PlatformBlackBerry Platform = "blackberry"

	// PlatformUnknown is used when no platform rule matches
	PlatformUnknown Platform = "unknown"
)

// Known reports whether p is a real platform label rather than PlatformUnknown.
func (p Platform) Known() bool { return p != PlatformUnknown && p != "" }

func (p Platform) String() string { return string(p) }

// Browser is a coarse browser or engine family.
type Browser string

// Browser identifiers
const (
	// BrowserUC identifies UC Browser
	BrowserUC Browser = "uc-browser"

	// BrowserAndroid identifies the stock Android browser
	BrowserAndroid Browser = "android"

	// BrowserIE identifies Microsoft Internet Explorer
	BrowserIE Browser = "internet-explorer"

	// BrowserBlackBerry identifies the BlackBerry 10 browser
	BrowserBlackBerry Browser = "blackberry"

	// BrowserVivaldi identifies Vivaldi
	BrowserVivaldi Browser = "vivaldi"

	// BrowserFirefox identifies Mozilla Firefox
	BrowserFirefox Browser = "mozilla-firefox"

	// BrowserOpera identifies Opera, both Presto and Chromium based
	BrowserOpera Browser = "opera"

	// BrowserOperaMini identifies Opera Mini
	BrowserOperaMini Browser = "opera-mini"

	// BrowserChrome identifies Google Chrome
	BrowserChrome Browser = "google-chrome"

	// BrowserSafari identifies Apple Safari
	BrowserSafari Browser = "safari"

	// BrowserUnknown is used when no browser rule matches
	BrowserUnknown Browser = "unknown"
)

// Known reports whether b is a real browser label rather than BrowserUnknown.
func (b Browser) Known() bool { return b != BrowserUnknown && b != "" }

func (b Browser) String() string { return string(b) }

// Attribute names accepted by UserAgent.Attr
const (
	AttrUserAgent = "user_agent"
	AttrPlatform  = "platform"
	AttrBrowser   = "browser"
	AttrMobile    = "mobile"
	AttrDesktop   = "desktop"
)
