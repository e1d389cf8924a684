package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	c := NoopCodecHooks{}
	c.OnDecodeStart(ctx, "dxf")
	c.OnDecodeComplete(ctx, "dxf", 3, time.Second, nil)
	c.OnEncodeStart(ctx, "json")
	c.OnEncodeComplete(ctx, "json", 1024, time.Second, nil)

	k := NoopCacheHooks{}
	k.OnCacheHit(ctx, "document")
	k.OnCacheMiss(ctx, "conversion")
	k.OnCacheSet(ctx, "conversion", 1024)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()

	if _, ok := Codec().(NoopCodecHooks); !ok {
		t.Error("Codec() should return NoopCodecHooks by default")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() should return NoopCacheHooks by default")
	}

	customCodec := &testCodecHooks{}
	SetCodecHooks(customCodec)
	if Codec() != customCodec {
		t.Error("SetCodecHooks should set custom hooks")
	}

	customCache := &testCacheHooks{}
	SetCacheHooks(customCache)
	if Cache() != customCache {
		t.Error("SetCacheHooks should set custom hooks")
	}

	Reset()
	if _, ok := Codec().(NoopCodecHooks); !ok {
		t.Error("Reset() should restore NoopCodecHooks")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Reset() should restore NoopCacheHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()
	defer Reset()

	custom := &testCodecHooks{}
	SetCodecHooks(custom)
	SetCodecHooks(nil)
	if Codec() != custom {
		t.Error("SetCodecHooks(nil) should be ignored")
	}

	SetCacheHooks(nil)
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("SetCacheHooks(nil) should be ignored")
	}
}

type testCodecHooks struct{ NoopCodecHooks }
type testCacheHooks struct{ NoopCacheHooks }
