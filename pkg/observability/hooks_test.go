package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	g := NoopGenerateHooks{}
	g.OnCarveStart(ctx, 19, 19)
	g.OnCarveComplete(ctx, 19, 19, 100, time.Millisecond)
	g.OnEncodeStart(ctx, "bmp")
	g.OnEncodeComplete(ctx, "bmp", 1024, time.Millisecond, nil)
}

func TestGlobalHooksRegistry(t *testing.T) {
	// Reset to known state
	Reset()

	if _, ok := Generate().(NoopGenerateHooks); !ok {
		t.Error("Generate() should return NoopGenerateHooks by default")
	}

	custom := &testGenerateHooks{}
	SetGenerateHooks(custom)
	if Generate() != custom {
		t.Error("SetGenerateHooks should set custom hooks")
	}

	// Reset and verify
	Reset()
	if _, ok := Generate().(NoopGenerateHooks); !ok {
		t.Error("Reset() should restore NoopGenerateHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testGenerateHooks{}
	SetGenerateHooks(custom)

	// Setting nil should be ignored
	SetGenerateHooks(nil)

	if Generate() != custom {
		t.Error("SetGenerateHooks(nil) should be ignored")
	}

	Reset()
}

type testGenerateHooks struct{ NoopGenerateHooks }
