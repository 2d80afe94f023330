package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"ecobin/config"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Queries slower than this are logged at warn level.
const slowQueryThreshold = 200 * time.Millisecond

// queryLogger adapts gorm's logger interface onto slog so database
// output lands in the same stream as the rest of the service.
type queryLogger struct {
	logger *slog.Logger
	level  logger.LogLevel
}

func newQueryLogger(baseLogger *slog.Logger, cfg *config.Config) logger.Interface {
	level := logger.Warn
	if cfg != nil && cfg.Env.Debug {
		level = logger.Info
	}

	return &queryLogger{
		logger: baseLogger,
		level:  level,
	}
}

func (l *queryLogger) LogMode(level logger.LogLevel) logger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

func (l *queryLogger) Info(ctx context.Context, msg string, args ...any) {
	l.logf(ctx, logger.Info, slog.LevelInfo, msg, args...)
}

func (l *queryLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.logf(ctx, logger.Warn, slog.LevelWarn, msg, args...)
}

func (l *queryLogger) Error(ctx context.Context, msg string, args ...any) {
	l.logf(ctx, logger.Error, slog.LevelError, msg, args...)
}

func (l *queryLogger) logf(ctx context.Context, gormLevel logger.LogLevel, slogLevel slog.Level, msg string, args ...any) {
	if l.level < gormLevel || l.logger == nil {
		return
	}

	l.logger.LogAttrs(ctx, slogLevel, "Database log",
		slog.String("message", fmt.Sprintf(msg, args...)),
	)
}

func (l *queryLogger) Trace(ctx context.Context, begin time.Time, sqlAndRowsFn func() (string, int64), err error) {
	if l.logger == nil || l.level == logger.Silent {
		return
	}

	elapsed := time.Since(begin)

	switch {
	case err != nil && l.level >= logger.Error && !errors.Is(err, gorm.ErrRecordNotFound):
		attrs := append(queryAttrs(sqlAndRowsFn, elapsed), slog.String("error", err.Error()))
		l.logger.LogAttrs(ctx, slog.LevelError, "Query failed", attrs...)
	case elapsed > slowQueryThreshold && l.level >= logger.Warn:
		attrs := append(queryAttrs(sqlAndRowsFn, elapsed), slog.Duration("slowThreshold", slowQueryThreshold))
		l.logger.LogAttrs(ctx, slog.LevelWarn, "Slow query", attrs...)
	case l.level >= logger.Info:
		l.logger.LogAttrs(ctx, slog.LevelInfo, "Query", queryAttrs(sqlAndRowsFn, elapsed)...)
	}
}

func queryAttrs(sqlAndRowsFn func() (string, int64), elapsed time.Duration) []slog.Attr {
	sql, rows := sqlAndRowsFn()

	return []slog.Attr{
		slog.Duration("elapsed", elapsed),
		slog.Int64("rows", rows),
		slog.String("sql", sql),
	}
}
