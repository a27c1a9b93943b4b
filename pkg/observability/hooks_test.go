package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	p := NoopPipelineHooks{}
	p.OnLayoutStart(ctx, 12)
	p.OnLayoutComplete(ctx, 16, time.Millisecond, nil)
	p.OnRenderStart(ctx, "board", []string{"svg"})
	p.OnRenderComplete(ctx, "board", []string{"svg"}, time.Millisecond, nil)

	c := NoopCacheHooks{}
	c.OnCacheHit(ctx, "artifact")
	c.OnCacheMiss(ctx, "artifact")
	c.OnCacheSet(ctx, "artifact", 1024)

	s := NoopStoreHooks{}
	s.OnLoad(ctx, "file", 4, nil)
	s.OnSave(ctx, "redis", 8, nil)

	g := NoopGameHooks{}
	g.OnStart(ctx, 16)
	g.OnRoll(ctx, 3, 0, 3)
	g.OnReset(ctx)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()
	defer Reset()

	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("Pipeline() should return NoopPipelineHooks by default")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() should return NoopCacheHooks by default")
	}
	if _, ok := Store().(NoopStoreHooks); !ok {
		t.Error("Store() should return NoopStoreHooks by default")
	}
	if _, ok := Game().(NoopGameHooks); !ok {
		t.Error("Game() should return NoopGameHooks by default")
	}

	customPipeline := &testPipelineHooks{}
	SetPipelineHooks(customPipeline)
	if Pipeline() != customPipeline {
		t.Error("SetPipelineHooks should set custom hooks")
	}

	customCache := &testCacheHooks{}
	SetCacheHooks(customCache)
	if Cache() != customCache {
		t.Error("SetCacheHooks should set custom hooks")
	}

	customStore := &testStoreHooks{}
	SetStoreHooks(customStore)
	if Store() != customStore {
		t.Error("SetStoreHooks should set custom hooks")
	}

	customGame := &testGameHooks{}
	SetGameHooks(customGame)
	if Game() != customGame {
		t.Error("SetGameHooks should set custom hooks")
	}

	Reset()
	if _, ok := Game().(NoopGameHooks); !ok {
		t.Error("Reset() should restore NoopGameHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()
	defer Reset()

	custom := &testGameHooks{}
	SetGameHooks(custom)
	SetGameHooks(nil)

	if Game() != custom {
		t.Error("SetGameHooks(nil) should be ignored")
	}
}

type testPipelineHooks struct{ NoopPipelineHooks }
type testCacheHooks struct{ NoopCacheHooks }
type testStoreHooks struct{ NoopStoreHooks }
type testGameHooks struct{ NoopGameHooks }
