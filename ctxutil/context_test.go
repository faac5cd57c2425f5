package ctxutil

import (
	"context"
	"strings"
	"testing"
)

func TestEnsureTraceIDGeneratesOnce(t *testing.T) {
	ctx, id := EnsureTraceID(context.Background())
	if id == "" {
		t.Fatal("expected generated trace id")
	}
	ctx2, id2 := EnsureTraceID(ctx)
	if id2 != id {
		t.Errorf("second call changed trace id: %q != %q", id2, id)
	}
	if GetTraceID(ctx2) != id {
		t.Errorf("GetTraceID = %q", GetTraceID(ctx2))
	}
}

func TestSetTraceIDKeepsGiven(t *testing.T) {
	ctx, id := EnsureTraceID(SetTraceID(context.Background(), "abc"))
	if id != "abc" || GetTraceID(ctx) != "abc" {
		t.Errorf("trace id = %q", id)
	}
}

func TestGetTraceIDEmpty(t *testing.T) {
	if got := GetTraceID(context.Background()); got != "" {
		t.Errorf("GetTraceID = %q, want empty", got)
	}
}

func TestValidTraceID(t *testing.T) {
	valid := []string{"abc", "0f8fad5b-d9cb-469f-a165-70867728950e"}
	invalid := []string{"", "with space", "line\nbreak", strings.Repeat("a", 129)}

	for _, id := range valid {
		if !ValidTraceID(id) {
			t.Errorf("ValidTraceID(%q) = false", id)
		}
	}
	for _, id := range invalid {
		if ValidTraceID(id) {
			t.Errorf("ValidTraceID(%q) = true", id)
		}
	}
}
