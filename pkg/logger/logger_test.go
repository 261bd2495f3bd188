package logger

import (
	"context"
	"testing"
	"time"
)

func TestInitAndContextLogging(t *testing.T) {
	Init("development")
	if GetLogger() == nil {
		t.Fatal("expected logger initialized")
	}

	ctx := context.WithValue(context.Background(), RequestIDKey, "req-1") //nolint:staticcheck

	Info(ctx, "info message")
	Warn(ctx, "warn message")
	Error(ctx, "error message")
	Debug(ctx, "debug message")
	LogRequest(ctx, "GET", "/api/events", 200, 5*time.Millisecond, "127.0.0.1")
}

func TestWithContext_NilAndMissingID(t *testing.T) {
	Init("development")

	if WithContext(nil) == nil { //nolint:staticcheck
		t.Fatal("expected logger for nil context")
	}
	if WithContext(context.Background()) == nil {
		t.Fatal("expected logger for context without request id")
	}
}
