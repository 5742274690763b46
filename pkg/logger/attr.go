package logger

import (
	"log/slog"
	"time"

	"github.com/dmitrymomot/uaclass/pkg/useragent"
)

func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

func Component(name string) slog.Attr {
	return slog.String("component", name)
}

func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

func Count(n int) slog.Attr {
	return slog.Int("count", n)
}

func Platform(p useragent.Platform) slog.Attr {
	return slog.String("platform", p.String())
}

func Browser(b useragent.Browser) slog.Attr {
	return slog.String("browser", b.String())
}

// UserAgent logs the raw string; long values are cut to keep records small.
func UserAgent(ua string) slog.Attr {
	const maxLen = 256
	if len(ua) > maxLen {
		ua = ua[:maxLen]
	}
	return slog.String("user_agent", ua)
}

// Client groups a full classification under a "client" key.
func Client(ua useragent.UserAgent) slog.Attr {
	return slog.Group("client",
		Platform(ua.Platform()),
		Browser(ua.Browser()),
		slog.Bool("mobile", ua.IsMobile()),
	)
}
