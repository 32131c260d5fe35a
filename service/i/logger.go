package i

// Logger is the leveled logger injected into services.
type Logger interface {
	Info(msg string)
	Warning(msg string)
	Error(msg string)
}
