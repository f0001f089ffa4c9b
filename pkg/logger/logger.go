package logger

import (
	"fmt"
	"log"
	"os"
	"strings"
)

// Logger é a interface para logging estruturado em pares chave/valor
type Logger interface {
	Info(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
	Debug(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
}

// SimpleLogger é uma implementação simples de Logger sobre a biblioteca padrão
type SimpleLogger struct {
	out       *log.Logger
	err       *log.Logger
	component string
	debugOn   bool
}

// NewLogger cria uma nova instância de Logger
func NewLogger() Logger {
	return NewComponentLogger("")
}

// NewComponentLogger cria um Logger com prefixo de componente
func NewComponentLogger(component string) Logger {
	return &SimpleLogger{
		out:       log.New(os.Stdout, "", log.Ldate|log.Ltime),
		err:       log.New(os.Stderr, "", log.Ldate|log.Ltime),
		component: component,
		debugOn:   os.Getenv("LOG_DEBUG") == "true",
	}
}

// format monta a linha de log com nível, componente e pares chave/valor
func (l *SimpleLogger) format(level, msg string, keysAndValues ...interface{}) string {
	var b strings.Builder
	b.WriteString(level)
	b.WriteString(": ")
	if l.component != "" {
		b.WriteString("[")
		b.WriteString(l.component)
		b.WriteString("] ")
	}
	b.WriteString(msg)
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		b.WriteString(fmt.Sprintf(" %v=%v", keysAndValues[i], keysAndValues[i+1]))
	}
	if len(keysAndValues)%2 != 0 {
		b.WriteString(fmt.Sprintf(" %v", keysAndValues[len(keysAndValues)-1]))
	}
	return b.String()
}

// Info registra uma mensagem de informação
func (l *SimpleLogger) Info(msg string, keysAndValues ...interface{}) {
	l.out.Println(l.format("INFO", msg, keysAndValues...))
}

// Error registra uma mensagem de erro
func (l *SimpleLogger) Error(msg string, keysAndValues ...interface{}) {
	l.err.Println(l.format("ERROR", msg, keysAndValues...))
}

// Debug registra uma mensagem de debug (apenas com LOG_DEBUG=true)
func (l *SimpleLogger) Debug(msg string, keysAndValues ...interface{}) {
	if !l.debugOn {
		return
	}
	l.out.Println(l.format("DEBUG", msg, keysAndValues...))
}

// Warn registra uma mensagem de aviso
func (l *SimpleLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.out.Println(l.format("WARN", msg, keysAndValues...))
}
