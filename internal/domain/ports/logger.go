package ports

// Logger abstrai o logger estruturado usado em toda a aplicação.
// A assinatura segue o slog: mensagem fixa mais pares chave/valor.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	With(args ...any) Logger
}
