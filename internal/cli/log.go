package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// newLogger returns the command-line logger. Debug level also reports the
// calling file and line, which is what --verbose is for.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	l := log.NewWithOptions(w, log.Options{
		Prefix:          "flowgrid",
		ReportTimestamp: true,
		ReportCaller:    level <= log.DebugLevel,
		TimeFormat:      "15:04:05.000",
		Level:           level,
	})
	styles := log.DefaultStyles()
	styles.Prefix = lipgloss.NewStyle().Foreground(colorCyan).Bold(true)
	styles.Levels[log.DebugLevel] = styles.Levels[log.DebugLevel].Foreground(colorDim)
	l.SetStyles(styles)
	return l
}

// stopwatch times one step of a command and logs how it ended.
type stopwatch struct {
	logger *log.Logger
	start  time.Time
}

func startTimer(l *log.Logger) stopwatch {
	return stopwatch{logger: l, start: time.Now()}
}

func (s stopwatch) elapsed() time.Duration {
	return time.Since(s.start).Round(time.Microsecond)
}

// done logs msg at info level with keyvals and the elapsed time.
func (s stopwatch) done(msg string, keyvals ...any) {
	s.logger.Info(msg, append(keyvals, "elapsed", s.elapsed())...)
}

// fail logs msg at warn level with err and the elapsed time, then returns err
// so callers can write `return sw.fail(...)`.
func (s stopwatch) fail(msg string, err error) error {
	s.logger.Warn(msg, "err", err, "elapsed", s.elapsed())
	return err
}

type loggerKey struct{}

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// loggerFromContext falls back to log.Default() for commands run without
// the root command's PersistentPreRun, as in tests.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
