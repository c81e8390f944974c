// Package logger builds *slog.Logger values from functional options or from
// an environment-driven Config, and provides attribute helpers so records
// share consistent keys across packages.
//
// # Usage
//
//	var cfg logger.Config
//	config.MustLoad(&cfg)
//
//	log, err := logger.FromConfig(cfg,
//	    logger.WithContextExtractors(environment.LoggerExtractor()),
//	)
//	if err != nil {
//	    // handle error
//	}
//	log.Info("catalog loaded", logger.Source(path), logger.Count(n))
//
// New picks a JSON or text handler, applies static attributes and wraps the
// result in LogHandlerDecorator when context extractors are registered.
//
// Error and Errors return an empty attribute for nil errors, so they can be
// passed unconditionally.
package logger
