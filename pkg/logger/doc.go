// Package logger builds *slog.Logger instances for recordkit services.
//
// New takes functional options: output format (json or text), minimum
// level, static attributes and ContextExtractor callbacks that pull
// request-scoped values (such as a request id) out of context.Context on
// every log call.
//
//	log := logger.New(
//		logger.WithEnvironment(cfg.Env, "recordkit"),
//		logger.WithLevel(level),
//		logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "schema stored", logger.Schema(name), logger.Component("registry"))
//
// Attribute helpers in attr.go keep key names consistent across packages.
// Libraries accept a *slog.Logger and fall back to Discard when none is
// given.
package logger
