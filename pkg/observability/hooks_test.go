package observability

import (
	"context"
	"testing"
	"time"
)

type recordingPipelineHooks struct {
	NoopPipelineHooks
	layouts int
	renders int
}

func (h *recordingPipelineHooks) OnLayoutStart(context.Context, string, int) { h.layouts++ }
func (h *recordingPipelineHooks) OnRenderStart(context.Context, string, []string) {
	h.renders++
}

type recordingCacheHooks struct {
	hits, misses, sets int
}

func (h *recordingCacheHooks) OnCacheHit(context.Context, string)      { h.hits++ }
func (h *recordingCacheHooks) OnCacheMiss(context.Context, string)     { h.misses++ }
func (h *recordingCacheHooks) OnCacheSet(context.Context, string, int) { h.sets++ }

func TestDefaultsAreNoop(t *testing.T) {
	Reset()
	ctx := context.Background()

	// Must not panic.
	Pipeline().OnLayoutStart(ctx, "sfdp", 10)
	Pipeline().OnLayoutComplete(ctx, "sfdp", time.Millisecond, nil)
	Pipeline().OnRenderStart(ctx, "plain", []string{"svg"})
	Pipeline().OnRenderComplete(ctx, "plain", []string{"svg"}, time.Millisecond, nil)
	Cache().OnCacheHit(ctx, KeyTypeLayout)
	Cache().OnCacheMiss(ctx, KeyTypeArtifact)
	Cache().OnCacheSet(ctx, KeyTypeArtifact, 128)
}

func TestRegisteredHooksReceiveEvents(t *testing.T) {
	t.Cleanup(Reset)
	ctx := context.Background()

	ph := &recordingPipelineHooks{}
	ch := &recordingCacheHooks{}
	SetPipelineHooks(ph)
	SetCacheHooks(ch)

	Pipeline().OnLayoutStart(ctx, "neato", 5)
	Pipeline().OnRenderStart(ctx, "weighted", []string{"svg", "png"})
	Cache().OnCacheHit(ctx, KeyTypeLayout)
	Cache().OnCacheMiss(ctx, KeyTypeLayout)
	Cache().OnCacheSet(ctx, KeyTypeLayout, 64)

	if ph.layouts != 1 || ph.renders != 1 {
		t.Errorf("pipeline events = %d/%d, want 1/1", ph.layouts, ph.renders)
	}
	if ch.hits != 1 || ch.misses != 1 || ch.sets != 1 {
		t.Errorf("cache events = %d/%d/%d, want 1/1/1", ch.hits, ch.misses, ch.sets)
	}
}

func TestSetNilKeepsCurrent(t *testing.T) {
	t.Cleanup(Reset)

	ph := &recordingPipelineHooks{}
	SetPipelineHooks(ph)
	SetPipelineHooks(nil)

	Pipeline().OnLayoutStart(context.Background(), "dot", 1)
	if ph.layouts != 1 {
		t.Error("nil registration replaced the active hooks")
	}
}
