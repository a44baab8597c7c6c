package log

import (
	"bytes"
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()

	SetupTestLogger()
	original := logrus.StandardLogger().Out
	buf := &bytes.Buffer{}
	logrus.SetOutput(buf)
	t.Cleanup(func() { logrus.SetOutput(original) })
	return buf
}

func TestCorrelationID(t *testing.T) {
	ctx, id := WithCorrelationID(context.Background())

	assert.NotEmpty(t, id)
	assert.Equal(t, id, GetCorrelationID(ctx))
	assert.Equal(t, "", GetCorrelationID(context.Background()))
}

func TestForContext_AddsCorrelationID(t *testing.T) {
	buf := captureOutput(t)

	ctx, id := WithCorrelationID(context.Background())
	ForContext(ctx).Info("mensagem")

	assert.Contains(t, buf.String(), id)
	assert.Contains(t, buf.String(), "mensagem")
}

func TestWithFields_DevelopmentFiltersFields(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	buf := captureOutput(t)

	L.WithFields(Fields{"path": "/v1/uploads", "user_agent": "curl"}).Info("requisição")

	assert.Contains(t, buf.String(), "/v1/uploads")
	assert.NotContains(t, buf.String(), "curl")
}

func TestWithFields_ProductionKeepsFields(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	buf := captureOutput(t)

	L.WithFields(Fields{"path": "/v1/uploads", "user_agent": "curl"}).Info("requisição")

	assert.Contains(t, buf.String(), "curl")
}

func TestConfigure_InvalidLevelFallsBackToInfo(t *testing.T) {
	captureOutput(t)

	Configure("barulhento")
	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())

	Configure("warn")
	assert.Equal(t, logrus.WarnLevel, logrus.GetLevel())
}
