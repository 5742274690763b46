// Package useragent classifies HTTP User-Agent strings into a coarse platform
// (android, ios, mac, windows, linux, blackberry) and a coarse browser family
// (google-chrome, safari, mozilla-firefox, internet-explorer, …), and derives a
// mobile/desktop guess from the result.
//
// It does not parse versions, vendors or engines. Classification is a linear
// scan over two ordered rule tables where the first matching rule wins:
//
//   - platform rules are case-insensitive regular expressions;
//   - browser rules are case-sensitive substrings.
//
// Order is significant in both tables. Android user agents also mention Linux,
// Chrome user agents also mention Safari, and Opera Mini user agents also
// mention Opera, so the more specific rule always comes first. Tables are
// package-level values built once and never mutated, so classification is
// safe for concurrent use without locking.
//
// # Usage
//
//	import "github.com/dmitrymomot/uaclass/pkg/useragent"
//
//	ua := useragent.New(r.UserAgent())
//	if ua.IsMobile() {
//	    // serve mobile-optimised assets
//	}
//	log.Printf("client=%s", ua.Summary())
//
// Values of unknown type, such as fields decoded from JSON, go through Parse,
// which rejects anything that is not a string:
//
//	ua, err := useragent.Parse(payload["user_agent"])
//	if errors.Is(err, useragent.ErrInvalidInputKind) {
//	    // reject the request
//	}
//
// # Form factor
//
// IsMobile is true for android and ios platforms unless the string mentions
// an iPad. IsDesktop is its negation, so unknown platforms count as desktop.
//
// # HTTP integration
//
// Middleware classifies each request once and stores the result in the
// request context; FromContext reads it back. LoggerExtractor plugs into
// pkg/logger so every log record written with the request context carries
// the client platform and browser.
//
// # Error Handling
//
// Unrecognized content is never an error. Parse returns *InvalidInputKindError
// (matching ErrInvalidInputKind) for non-string input, and UserAgent.Attr returns
// *UnknownAttributeError (matching ErrUnknownAttribute) for names outside its
// fixed attribute set.
package useragent
