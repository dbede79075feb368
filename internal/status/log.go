package status

import "github.com/nerrad567/gray-logic-office/internal/office"

// InfoLogger is the subset of logging.Logger the log sink needs.
// Compatible with logging.Logger and slog.Logger.
type InfoLogger interface {
	Info(msg string, args ...any)
}

// LogSink writes each event as a structured log record.
type LogSink struct {
	logger InfoLogger
}

// Log returns a sink logging events at info level.
func Log(logger InfoLogger) *LogSink {
	return &LogSink{logger: logger}
}

// Emit logs e. It never fails.
func (s *LogSink) Emit(e office.Event) error {
	args := []any{
		"device_id", e.DeviceID,
		"action", string(e.Action),
		"counter", e.Counter,
	}
	if e.FileName != "" {
		args = append(args, "file_name", e.FileName)
	}
	s.logger.Info("device status", args...)
	return nil
}
