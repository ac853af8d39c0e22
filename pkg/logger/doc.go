// Package logger builds configured log/slog loggers. It standardizes output
// format (JSON for aggregation, text for development), level and static
// attributes behind a small option API, so every binary embedding the SDK
// logs the same way.
//
//	log := logger.New(
//	    logger.WithJSONFormat(),
//	    logger.WithLevel(slog.LevelInfo),
//	    logger.WithAttrs(slog.String("service", "castlist-web")),
//	)
package logger
