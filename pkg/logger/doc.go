// Package logger provides log/slog attribute helpers shared across the
// module. Helpers return an empty slog.Attr for nil inputs so call sites can
// pass values through without guarding:
//
//	log.Warn("session discarded",
//		logger.Component("sessiontransport"),
//		logger.Error(err),
//	)
package logger
