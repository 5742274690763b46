package useragent

import (
	"context"
	"log/slog"
)

// LoggerExtractor returns a context extractor for the logger that adds
// a "client" group with the platform, browser and form factor.
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		ua, ok := FromContext(ctx)
		if !ok {
			return slog.Attr{}, false
		}
		return slog.Group("client",
			slog.String("platform", ua.Platform().String()),
			slog.String("browser", ua.Browser().String()),
			slog.Bool("mobile", ua.IsMobile()),
		), true
	}
}
