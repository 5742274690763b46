// Package logger builds *slog.Logger values from functional options and
// injects request-scoped attributes stored in a context.Context.
//
// New picks slog.NewTextHandler or slog.NewJSONHandler according to the
// configured Format and wraps it with LogHandlerDecorator, which runs every
// registered ContextExtractor on each record. The useragent package provides
// such an extractor, so records written with a request context carry the
// client's platform and browser:
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, "uaclass"),
//	    logger.WithLevelName(cfg.LogLevel),
//	    logger.WithContextExtractors(useragent.LoggerExtractor()),
//	)
//	log.InfoContext(r.Context(), "classified", logger.Client(ua))
//
// Attribute helpers in attr.go keep key names consistent. Error and RequestID
// return an empty attribute for zero input, which slog drops, so they can be
// passed without a nil check.
package logger
