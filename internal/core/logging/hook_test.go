package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
)

func TestContextHook_Run(t *testing.T) {
	tests := []struct {
		name      string
		setupCtx  func() context.Context
		wantKeys  []string
		wantEmpty []string
	}{
		{
			name: "operation and item id",
			setupCtx: func() context.Context {
				ctx := context.Background()
				ctx = WithOperation(ctx, "convert")
				ctx = WithItemID(ctx, "item-456")
				return ctx
			},
			wantKeys: []string{"op", "item_id"},
		},
		{
			name: "only operation",
			setupCtx: func() context.Context {
				return WithOperation(context.Background(), "create_raw")
			},
			wantKeys:  []string{"op"},
			wantEmpty: []string{"item_id"},
		},
		{
			name: "only item id",
			setupCtx: func() context.Context {
				return WithItemID(context.Background(), "item-456")
			},
			wantKeys:  []string{"item_id"},
			wantEmpty: []string{"op"},
		},
		{
			name:      "no context values",
			setupCtx:  context.Background,
			wantEmpty: []string{"op", "item_id"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			ctx := tt.setupCtx()

			logger := zerolog.New(&buf).Hook(ContextHook{})
			logger.Info().Ctx(ctx).Msg("test")

			var logEntry map[string]interface{}
			if err := json.Unmarshal(buf.Bytes(), &logEntry); err != nil {
				t.Fatalf("failed to parse log: %v", err)
			}

			for _, key := range tt.wantKeys {
				if _, ok := logEntry[key]; !ok {
					t.Errorf("expected %s to be present in log", key)
				}
			}

			for _, key := range tt.wantEmpty {
				if _, ok := logEntry[key]; ok {
					t.Errorf("expected %s to be absent from log", key)
				}
			}
		})
	}
}
