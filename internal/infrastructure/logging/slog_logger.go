package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/gamevault/gamevault-backend/internal/domain/ports"
)

// SlogLogger implementa ports.Logger com o JSON handler do slog
type SlogLogger struct {
	logger *slog.Logger
}

// NewSlogLogger cria o logger raiz da aplicação escrevendo JSON no
// stdout. O nível vem da configuração (debug|info|warn|error); valor
// desconhecido cai em info.
func NewSlogLogger(level string) ports.Logger {
	return newSlogLogger(os.Stdout, level)
}

func newSlogLogger(w io.Writer, level string) ports.Logger {
	var lv slog.Level
	if err := lv.UnmarshalText([]byte(strings.ToLower(level))); err != nil {
		lv = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lv})

	// Toda linha carrega o nome da aplicação para filtragem em agregadores
	return &SlogLogger{logger: slog.New(handler).With("app", "gamevault")}
}

func (l *SlogLogger) Debug(msg string, args ...any) {
	l.logger.Debug(msg, args...)
}

func (l *SlogLogger) Info(msg string, args ...any) {
	l.logger.Info(msg, args...)
}

func (l *SlogLogger) Warn(msg string, args ...any) {
	l.logger.Warn(msg, args...)
}

func (l *SlogLogger) Error(msg string, args ...any) {
	l.logger.Error(msg, args...)
}

func (l *SlogLogger) With(args ...any) ports.Logger {
	return &SlogLogger{logger: l.logger.With(args...)}
}
