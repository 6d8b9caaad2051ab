package telemetry_test

import (
	"errors"
	"strings"
	"testing"

	"go.trai.ch/hotloop/internal/adapters/telemetry"
	"go.trai.ch/hotloop/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func hasPrefix(prefix string) gomock.Matcher {
	return gomock.Cond(func(x any) bool {
		s, ok := x.(string)
		return ok && strings.HasPrefix(s, prefix)
	})
}

func TestLogBridge_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(hasPrefix("build.module finished in ")).Times(1)

	tracer := telemetry.NewOTelTracer("test", telemetry.NewLogBridge(mockLogger))

	_, span := tracer.Start(t.Context(), "build.module")
	span.End()
}

func TestLogBridge_Failure(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Warn(hasPrefix("build.executable failed after ")).Times(1)

	tracer := telemetry.NewOTelTracer("test", telemetry.NewLogBridge(mockLogger))

	_, span := tracer.Start(t.Context(), "build.executable")
	span.RecordError(errors.New("exit status 1"))
	span.End()
}

func TestLogBridge_FlushAndShutdown(t *testing.T) {
	ctrl := gomock.NewController(t)
	bridge := telemetry.NewLogBridge(mocks.NewMockLogger(ctrl))

	if err := bridge.ForceFlush(t.Context()); err != nil {
		t.Fatalf("ForceFlush: %v", err)
	}
	if err := bridge.Shutdown(t.Context()); err != nil {
		t.Fatalf("Shutdown: %v", err)
	}
}
