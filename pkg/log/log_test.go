package log

import (
	"bytes"
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestIsRelevantField(t *testing.T) {
	assert.True(t, isRelevantField("correlation_id"))
	assert.True(t, isRelevantField("order_number"))
	assert.True(t, isRelevantField("import_errors"))
	assert.False(t, isRelevantField("payload"))
}

func TestCorrelationID(t *testing.T) {
	ctx, id := WithCorrelationID(context.Background())

	assert.NotEmpty(t, id)
	assert.Equal(t, id, GetCorrelationID(ctx))
	assert.Empty(t, GetCorrelationID(context.Background()))
}

func TestForContext_AddsCorrelationID(t *testing.T) {
	var buf bytes.Buffer
	base := logrus.New()
	base.SetOutput(&buf)
	base.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true, DisableColors: true})

	previous := L
	L = newLogger(base)
	defer func() { L = previous }()

	ctx, id := WithCorrelationID(context.Background())
	ForContext(ctx).Info("pedido criado")

	assert.Contains(t, buf.String(), "correlation_id="+id)
	assert.Contains(t, buf.String(), "pedido criado")
}

func TestSetup_UnknownLevelFallsBackToInfo(t *testing.T) {
	previous := logrus.GetLevel()
	defer logrus.SetLevel(previous)

	Setup("verbose")
	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())

	Setup("debug")
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())
}

func TestContextWithCorrelationID_KeepsGivenID(t *testing.T) {
	ctx := ContextWithCorrelationID(context.Background(), "abc-123")
	assert.Equal(t, "abc-123", GetCorrelationID(ctx))
}

func TestWithFields_DropsIrrelevantFieldsInDevelopment(t *testing.T) {
	t.Setenv("APP_ENV", "development")

	var buf bytes.Buffer
	base := logrus.New()
	base.SetOutput(&buf)
	base.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true, DisableColors: true})

	newLogger(base).WithFields(Fields{"order_number": "202601-00001", "payload": "x"}).Info("ok")

	assert.Contains(t, buf.String(), "order_number=202601-00001")
	assert.NotContains(t, buf.String(), "payload")
}

func TestWithFields_KeepsEverythingInProduction(t *testing.T) {
	t.Setenv("APP_ENV", "production")

	var buf bytes.Buffer
	base := logrus.New()
	base.SetOutput(&buf)
	base.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true, DisableColors: true})

	newLogger(base).WithFields(Fields{"payload": "x"}).Info("ok")

	assert.Contains(t, buf.String(), "payload=x")
}
