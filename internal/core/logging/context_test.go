package logging

import (
	"context"
	"testing"
)

func TestWithOperation(t *testing.T) {
	ctx := WithOperation(context.Background(), "archive")

	if got := GetOperation(ctx); got != "archive" {
		t.Errorf("GetOperation() = %q, want %q", got, "archive")
	}
}

func TestWithItemID(t *testing.T) {
	ctx := WithItemID(context.Background(), "abc123xyz")

	if got := GetItemID(ctx); got != "abc123xyz" {
		t.Errorf("GetItemID() = %q, want %q", got, "abc123xyz")
	}
}

func TestGetOperation_NotPresent(t *testing.T) {
	if got := GetOperation(context.Background()); got != "" {
		t.Errorf("GetOperation() = %q, want empty string", got)
	}
}

func TestGetItemID_NotPresent(t *testing.T) {
	if got := GetItemID(context.Background()); got != "" {
		t.Errorf("GetItemID() = %q, want empty string", got)
	}
}
