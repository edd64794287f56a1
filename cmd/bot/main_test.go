package main

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestShutdown(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		code  int
		level zapcore.Level
	}{
		{"clean", nil, 0, zapcore.InfoLevel},
		{"signal", fmt.Errorf("run: %w", context.Canceled), 0, zapcore.InfoLevel},
		{"failure", errors.New("redis unreachable"), 1, zapcore.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zapcore.DebugLevel)

			code := shutdown(zap.New(core), tt.err)

			assert.Equal(t, tt.code, code)
			if assert.Equal(t, 1, logs.Len()) {
				assert.Equal(t, tt.level, logs.All()[0].Level)
			}
		})
	}
}
