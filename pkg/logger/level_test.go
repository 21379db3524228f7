package logger

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestStr2ZapLevel(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		want    zapcore.Level
		wantErr bool
	}{
		{name: "debug", level: "debug", want: zapcore.DebugLevel},
		{name: "upper case", level: "WARN", want: zapcore.WarnLevel},
		{name: "warning alias", level: "warning", want: zapcore.WarnLevel},
		{name: "empty is info", level: "", want: zapcore.InfoLevel},
		{name: "fatal", level: "fatal", want: zapcore.FatalLevel},
		{name: "unknown", level: "verbose", want: zapcore.InfoLevel, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Str2ZapLevel(tt.level)
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrUnknownLevel))
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}
