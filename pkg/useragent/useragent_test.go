package useragent_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/dmitrymomot/uaclass/pkg/useragent"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	chromeMacUA     = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_11_6) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/55.0.2883.35 Safari/537.36"
	operaMiniUA     = "Opera/9.80 (iPhone; Opera Mini/8.0.0/34.2336; U; en) Presto/2.8.119 Version/11.10"
	iPadUA          = "Mozilla/5.0 (iPad; CPU OS 9_1 like Mac OS X) AppleWebKit/601.1.46 (KHTML, like Gecko) Version/9.0 Mobile/13B137 Safari/601.1"
	oldAndroidUA    = "Mozilla/5.0 (Linux; U; Android 2.3.6; en-us; Nexus S Build/GRK39F) AppleWebKit/533.1 (KHTML, like Gecko) Version/4.0 Mobile Safari/533.1"
	notARealUA      = "this is not a real ua string"
	blackBerry10UA  = "Mozilla/5.0 (BB10; Touch) AppleWebKit/537.1+ (KHTML, like Gecko) Version/10.0.0.1337 Mobile Safari/537.1+"
	ie11UA          = "Mozilla/5.0 (Windows NT 10.0; WOW64; Trident/7.0; rv:11.0) like Gecko"
	ucBrowserNokiaU = "NokiaX2-02/2.0 (11.79) Profile/MIDP-2.1 Configuration/CLDC-1.1 Mozilla/4.0 (compatible; MSIE 8.0; Windows NT 6.1; Trident/4.0; SLCC2;.NET CLR 2.0.50727; .NET CLR 3.5.30729; .NET CLR 3.0.30729; Media Center PC 6.0; InfoPath.2) UCBrowser8.4.0.159/70/352"
)

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		ua       string
		platform useragent.Platform
		browser  useragent.Browser
		mobile   bool
	}{
		{
			name:     "Chrome on macOS",
			ua:       chromeMacUA,
			platform: useragent.PlatformMac,
			browser:  useragent.BrowserChrome,
		},
		{
			name:     "Old Android",
			ua:       oldAndroidUA,
			platform: useragent.PlatformAndroid,
			browser:  useragent.BrowserAndroid,
			mobile:   true,
		},
		{
			name:     "Android",
			ua:       "Mozilla/5.0 (Linux; U; Android 4.0.2; en-us; Galaxy Nexus Build/ICL53F) AppleWebKit/534.30 (KHTML, like Gecko) Version/4.0 Mobile Safari/534.30",
			platform: useragent.PlatformAndroid,
			browser:  useragent.BrowserAndroid,
			mobile:   true,
		},
		{
			name:     "Chrome on Android reports the android browser",
			ua:       "Mozilla/5.0 (Linux; Android 11; Pixel 5) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Mobile Safari/537.36",
			platform: useragent.PlatformAndroid,
			browser:  useragent.BrowserAndroid,
			mobile:   true,
		},
		{
			name:     "IE 11",
			ua:       ie11UA,
			platform: useragent.PlatformWindows,
			browser:  useragent.BrowserIE,
		},
		{
			name:     "IE 10",
			ua:       "Mozilla/5.0 (compatible; MSIE 10.0; Windows NT 6.1; WOW64; Trident/6.0)",
			platform: useragent.PlatformWindows,
			browser:  useragent.BrowserIE,
		},
		{
			name:     "IE 9",
			ua:       "Mozilla/5.0 (compatible; MSIE 9.0; Windows NT 6.1; Trident/5.0)",
			platform: useragent.PlatformWindows,
			browser:  useragent.BrowserIE,
		},
		{
			name:     "IE 8",
			ua:       "Mozilla/4.0 (compatible; MSIE 8.0; Windows NT 6.0; Trident/4.0)",
			platform: useragent.PlatformWindows,
			browser:  useragent.BrowserIE,
		},
		{
			name:     "IE 7",
			ua:       "Mozilla/4.0 (compatible; MSIE 7.0; Windows NT 6.0)",
			platform: useragent.PlatformWindows,
			browser:  useragent.BrowserIE,
		},
		{
			name:     "BlackBerry 10",
			ua:       blackBerry10UA,
			platform: useragent.PlatformBlackBerry,
			browser:  useragent.BrowserBlackBerry,
		},
		{
			name:     "Branded BlackBerry",
			ua:       "BlackBerry9700/5.0.0.351 Profile/MIDP-2.1 Configuration/CLDC-1.1 VendorID/123",
			platform: useragent.PlatformBlackBerry,
			browser:  useragent.BrowserUnknown,
		},
		{
			name:     "Chromium based Opera",
			ua:       "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_11_1) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/50.0.2661.87 Safari/537.36 OPR/37.0.2178.31",
			platform: useragent.PlatformMac,
			browser:  useragent.BrowserOpera,
		},
		{
			name:     "Presto Opera",
			ua:       "Opera/9.80 (Macintosh; Intel Mac OS X 10.9.1) Presto/2.12.388 Version/12.16",
			platform: useragent.PlatformMac,
			browser:  useragent.BrowserOpera,
		},
		{
			name:     "Opera Mini on iPhone",
			ua:       operaMiniUA,
			platform: useragent.PlatformIOS,
			browser:  useragent.BrowserOperaMini,
			mobile:   true,
		},
		{
			name:     "Safari on iPad",
			ua:       iPadUA,
			platform: useragent.PlatformIOS,
			browser:  useragent.BrowserSafari,
		},
		{
			name:     "Safari on iPhone",
			ua:       "Mozilla/5.0 (iPhone; CPU iPhone OS 9_1 like Mac OS X) AppleWebKit/601.1.46 (KHTML, like Gecko) Version/9.0 Mobile/13B137 Safari/601.1",
			platform: useragent.PlatformIOS,
			browser:  useragent.BrowserSafari,
			mobile:   true,
		},
		{
			name:     "Safari on macOS",
			ua:       "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_9_3) AppleWebKit/537.75.14 (KHTML, like Gecko) Version/7.0.3 Safari/7046A194A",
			platform: useragent.PlatformMac,
			browser:  useragent.BrowserSafari,
		},
		{
			name:     "UC Browser",
			ua:       ucBrowserNokiaU,
			platform: useragent.PlatformWindows,
			browser:  useragent.BrowserUC,
		},
		{
			name:     "Firefox on Linux",
			ua:       "Mozilla/5.0 (X11; Ubuntu; Linux x86_64; rv:89.0) Gecko/20100101 Firefox/89.0",
			platform: useragent.PlatformLinux,
			browser:  useragent.BrowserFirefox,
		},
		{
			name:     "Vivaldi on Windows",
			ua:       "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36 Vivaldi/4.0",
			platform: useragent.PlatformWindows,
			browser:  useragent.BrowserVivaldi,
		},
		{
			name:     "Not a real UA",
			ua:       notARealUA,
			platform: useragent.PlatformUnknown,
			browser:  useragent.BrowserUnknown,
		},
		{
			name:     "Empty UA",
			ua:       "",
			platform: useragent.PlatformUnknown,
			browser:  useragent.BrowserUnknown,
		},
		{
			name:     "Platform match ignores case, browser match does not",
			ua:       "ANDROID",
			platform: useragent.PlatformAndroid,
			browser:  useragent.BrowserUnknown,
			mobile:   true,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ua := useragent.New(tc.ua)
			assert.Equal(t, tc.ua, ua.UserAgent())
			assert.Equal(t, tc.ua, ua.String())
			assert.Equal(t, tc.platform, ua.Platform())
			assert.Equal(t, tc.browser, ua.Browser())
			assert.Equal(t, tc.mobile, ua.IsMobile())
			assert.Equal(t, !tc.mobile, ua.IsDesktop())
		})
	}
}

func TestNew_Idempotent(t *testing.T) {
	t.Parallel()

	for _, s := range []string{chromeMacUA, operaMiniUA, iPadUA, notARealUA, ""} {
		assert.Equal(t, useragent.New(s), useragent.New(s))
	}
}

func TestNew_OrderSensitivity(t *testing.T) {
	t.Parallel()

	t.Run("Opera Mini wins over Opera", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, useragent.BrowserOperaMini, useragent.MatchBrowser("Opera/9.80 Opera Mini/8.0"))
	})

	t.Run("Chrome wins over Safari", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, useragent.BrowserChrome, useragent.MatchBrowser("Chrome/55.0 Safari/537.36"))
	})

	t.Run("Trident wins over Safari", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, useragent.BrowserIE, useragent.MatchBrowser("Trident/7.0 Safari/537.36"))
	})

	t.Run("Android wins over Linux", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, useragent.PlatformAndroid, useragent.MatchPlatform("Linux; Android 9"))
	})

	t.Run("iOS wins over Mac", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, useragent.PlatformIOS, useragent.MatchPlatform("iPhone; CPU iPhone OS 14_4 like Mac OS X"))
	})
}

func TestIsMobile_IPadExclusion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ua   string
	}{
		{name: "iPad", ua: iPadUA},
		{name: "lower case ipad on android", ua: "Mozilla/5.0 (Linux; Android 9; ipad-clone)"},
		{name: "upper case IPAD", ua: "IPAD OS"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ua := useragent.New(tc.ua)
			assert.False(t, ua.IsMobile())
			assert.True(t, ua.IsDesktop())
		})
	}
}

func TestIsDesktop_UnknownPlatform(t *testing.T) {
	t.Parallel()

	ua := useragent.New(notARealUA)
	assert.False(t, ua.Platform().Known())
	assert.False(t, ua.IsMobile())
	assert.True(t, ua.IsDesktop())
}

type customUA string

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("string", func(t *testing.T) {
		t.Parallel()
		ua, err := useragent.Parse(chromeMacUA)
		require.NoError(t, err)
		assert.Equal(t, useragent.New(chromeMacUA), ua)
	})

	t.Run("empty string", func(t *testing.T) {
		t.Parallel()
		ua, err := useragent.Parse("")
		require.NoError(t, err)
		assert.Equal(t, useragent.PlatformUnknown, ua.Platform())
		assert.Equal(t, useragent.BrowserUnknown, ua.Browser())
	})

	t.Run("named string type", func(t *testing.T) {
		t.Parallel()
		ua, err := useragent.Parse(customUA(operaMiniUA))
		require.NoError(t, err)
		assert.Equal(t, useragent.BrowserOperaMini, ua.Browser())
	})

	invalid := []struct {
		name  string
		value any
		kind  string
	}{
		{name: "nil", value: nil, kind: "nil"},
		{name: "slice", value: []any{}, kind: "slice"},
		{name: "map", value: map[string]any{}, kind: "map"},
		{name: "struct", value: struct{}{}, kind: "struct"},
		{name: "zero", value: 0, kind: "int"},
		{name: "integer", value: 1234, kind: "int"},
		{name: "float", value: 3.14, kind: "float64"},
		{name: "bool", value: true, kind: "bool"},
		{name: "pointer to string", value: new(string), kind: "ptr"},
	}

	for _, tc := range invalid {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := useragent.Parse(tc.value)
			require.Error(t, err)
			assert.ErrorIs(t, err, useragent.ErrInvalidInputKind)

			var kindErr *useragent.InvalidInputKindError
			require.True(t, errors.As(err, &kindErr))
			assert.Equal(t, tc.kind, kindErr.Kind)
			assert.Contains(t, err.Error(), tc.kind+" given")
		})
	}
}

func TestAttr(t *testing.T) {
	t.Parallel()

	ua := useragent.New(operaMiniUA)

	tests := []struct {
		name     string
		expected any
	}{
		{name: useragent.AttrUserAgent, expected: operaMiniUA},
		{name: "userAgent", expected: operaMiniUA},
		{name: useragent.AttrPlatform, expected: useragent.PlatformIOS},
		{name: useragent.AttrBrowser, expected: useragent.BrowserOperaMini},
		{name: useragent.AttrMobile, expected: true},
		{name: useragent.AttrDesktop, expected: false},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			v, err := ua.Attr(tc.name)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, v)
		})
	}

	for _, name := range []string{"version", "unknownPlatform", "Platform", ""} {
		name := name
		t.Run("unknown "+name, func(t *testing.T) {
			t.Parallel()
			v, err := ua.Attr(name)
			assert.Nil(t, v)
			assert.ErrorIs(t, err, useragent.ErrUnknownAttribute)

			var attrErr *useragent.UnknownAttributeError
			require.True(t, errors.As(err, &attrErr))
			assert.Equal(t, name, attrErr.Name)
		})
	}
}

func TestZeroValue(t *testing.T) {
	t.Parallel()

	var ua useragent.UserAgent
	assert.Equal(t, useragent.PlatformUnknown, ua.Platform())
	assert.Equal(t, useragent.BrowserUnknown, ua.Browser())
	assert.True(t, ua.IsDesktop())
}

func TestMarshalJSON(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(useragent.New(blackBerry10UA))
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"user_agent": "`+blackBerry10UA+`",
		"platform": "blackberry",
		"browser": "blackberry",
		"mobile": false,
		"desktop": true
	}`, string(data))
}

func TestSummary(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "google-chrome on mac (desktop)", useragent.New(chromeMacUA).Summary())
	assert.Equal(t, "opera-mini on ios (mobile)", useragent.New(operaMiniUA).Summary())
	assert.Equal(t, "unknown client (desktop)", useragent.New(notARealUA).Summary())
}
