package log

import (
	"context"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLogger_RequestID(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := &zapLogger{sugar: zap.New(core).Sugar()}

	ctx := WithRequestID(context.Background(), "req-42")
	l.Infof(ctx, "polled %s", "task-1")
	l.Warn(context.Background(), "no request")

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(entries))
	}
	if entries[0].Message != "polled task-1" {
		t.Fatalf("message = %q", entries[0].Message)
	}
	if got := entries[0].ContextMap()["request_id"]; got != "req-42" {
		t.Fatalf("request_id = %v, want req-42", got)
	}
	if _, ok := entries[1].ContextMap()["request_id"]; ok {
		t.Fatal("request_id attached without one in context")
	}
}

func TestInit_UnknownLevelFallsBack(t *testing.T) {
	l := Init(ZapConfig{Level: "loud", Mode: ModeProduction, Encoding: EncodingJSON})
	if l == nil {
		t.Fatal("Init returned nil")
	}
}

func TestRequestID_Empty(t *testing.T) {
	if got := RequestID(context.Background()); got != "" {
		t.Fatalf("RequestID = %q, want empty", got)
	}
}
