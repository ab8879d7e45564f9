package log

import (
	"context"
	"io"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Fields é um alias para logrus.Fields
type Fields logrus.Fields

// Logger é a interface de log usada pelos serviços e handlers
type Logger interface {
	WithField(key string, value interface{}) Logger
	WithFields(fields Fields) Logger
	WithError(err error) Logger
	WithContext(ctx context.Context) Logger

	Debug(args ...interface{})
	Debugf(format string, args ...interface{})
	Info(args ...interface{})
	Infof(format string, args ...interface{})
	Warn(args ...interface{})
	Warnf(format string, args ...interface{})
	Error(args ...interface{})
	Errorf(format string, args ...interface{})
}

type contextKey string

// CorrelationIDKey guarda o ID de correlação da requisição no contexto
const CorrelationIDKey contextKey = "correlation_id"
const correlationIDField = "correlation_id"

// campos sempre mantidos em desenvolvimento, além dos prefixos de domínio
var (
	devFields   = []string{correlationIDField, "method", "path", "status_code", "duration_ms", "error", "file", "job"}
	devPrefixes = []string{"order_", "site_", "import_"}
)

// logger adapta um *logrus.Entry; os métodos de nível vêm do entry embutido
type logger struct {
	*logrus.Entry
}

// L é a instância global usada quando não há contexto de requisição
var L Logger = newLogger(logrus.StandardLogger())

func newLogger(base *logrus.Logger) *logger {
	return &logger{Entry: logrus.NewEntry(base)}
}

// IsDevelopment retorna verdadeiro se estamos em ambiente de desenvolvimento
func IsDevelopment() bool {
	switch os.Getenv("APP_ENV") {
	case "", "development", "dev":
		return true
	}
	return false
}

// Setup configura o logger global com o nível informado (debug, info, warn, error).
// Níveis desconhecidos resultam em info.
func Setup(level string) {
	SetupWithOutput(level, os.Stdout)
}

// SetupWithOutput é o Setup com destino configurável
func SetupWithOutput(level string, out io.Writer) {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
	logrus.SetOutput(out)

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	logrus.SetLevel(parsed)

	L = newLogger(logrus.StandardLogger())
}

// SetupTestLogger configura um logger compacto e verboso para testes
func SetupTestLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		PadLevelText:     true,
	})
	logrus.SetLevel(logrus.DebugLevel)
	logrus.SetReportCaller(false)

	L = newLogger(logrus.StandardLogger())
}

func (l *logger) WithField(key string, value interface{}) Logger {
	if IsDevelopment() && !isRelevantField(key) {
		return l
	}
	return &logger{Entry: l.Entry.WithField(key, value)}
}

// WithFields descarta em desenvolvimento os campos fora de devFields/devPrefixes
func (l *logger) WithFields(fields Fields) Logger {
	if !IsDevelopment() {
		return &logger{Entry: l.Entry.WithFields(logrus.Fields(fields))}
	}

	kept := make(logrus.Fields, len(fields))
	for k, v := range fields {
		if isRelevantField(k) {
			kept[k] = v
		}
	}
	if len(kept) == 0 {
		return l
	}
	return &logger{Entry: l.Entry.WithFields(kept)}
}

func isRelevantField(key string) bool {
	for _, field := range devFields {
		if key == field {
			return true
		}
	}
	for _, prefix := range devPrefixes {
		if strings.HasPrefix(key, prefix) {
			return true
		}
	}
	return false
}

func (l *logger) WithError(err error) Logger {
	return &logger{Entry: l.Entry.WithError(err)}
}

// WithContext anexa o correlation_id presente no contexto
func (l *logger) WithContext(ctx context.Context) Logger {
	if ctx == nil {
		return l
	}

	if correlationID := GetCorrelationID(ctx); correlationID != "" {
		return l.WithField(correlationIDField, correlationID)
	}

	return l
}

// WithCorrelationID gera um novo ID de correlação e o grava no contexto
func WithCorrelationID(ctx context.Context) (context.Context, string) {
	correlationID := uuid.New().String()
	return ContextWithCorrelationID(ctx, correlationID), correlationID
}

// ContextWithCorrelationID grava um ID já conhecido (ex.: vindo do header X-Correlation-ID)
func ContextWithCorrelationID(ctx context.Context, correlationID string) context.Context {
	return context.WithValue(ctx, CorrelationIDKey, correlationID)
}

func GetCorrelationID(ctx context.Context) string {
	if correlationID, ok := ctx.Value(CorrelationIDKey).(string); ok {
		return correlationID
	}
	return ""
}

// ForContext cria um logger com o ID de correlação do contexto
func ForContext(ctx context.Context) Logger {
	return L.WithContext(ctx)
}
