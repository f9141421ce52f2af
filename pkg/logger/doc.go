// Package logger builds *slog.Logger values from functional options and
// provides attribute constructors with consistent key names.
//
//	log := logger.New(
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithFormat(logger.FormatJSON),
//	    logger.WithAttr(logger.Component("validkit")),
//	)
//	log.Debug("check evaluated", logger.Field("email"), logger.Kind("email"), logger.Valid(true))
//
// The default logger writes text records at info level to stderr. ParseLevel
// and ParseFormat turn configuration strings into options and report
// ErrInvalidLevel or ErrInvalidFormat. WithFormat panics on unknown formats,
// since it is meant for values known at compile time.
//
// Error and Errors return an empty attribute for nil errors, so
//
//	log.Info("done", logger.Error(err))
//
// needs no nil check.
package logger
