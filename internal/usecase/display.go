package usecase

import "go.uber.org/zap"

// LoggerDisplay reports flow progress through the structured log instead of a
// DOM. It replaces the original demo's global debug state with an injectable
// sink.
type LoggerDisplay struct {
	logger *zap.Logger
}

func NewLoggerDisplay(logger *zap.Logger) *LoggerDisplay {
	return &LoggerDisplay{logger: logger}
}

func (d *LoggerDisplay) ShowInfo(title, message string) {
	d.logger.Info("checkout display",
		zap.String("title", title),
		zap.String("message", message))
}

func (d *LoggerDisplay) ShowSuccess(message string) {
	d.logger.Info("checkout success", zap.String("message", message))
}
