package goroutine

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRun_RecoversPanic(t *testing.T) {
	ok := Run(context.Background(), "boom", func(context.Context) {
		panic("boom")
	})
	assert.False(t, ok)
}

func TestRun_Completes(t *testing.T) {
	called := false
	ok := Run(context.Background(), "noop", func(context.Context) { called = true })
	assert.True(t, ok)
	assert.True(t, called)
}

func TestGo_PassesContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	Go(ctx, "wait", func(ctx context.Context) {
		<-ctx.Done()
		close(done)
	})
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("background task did not observe cancellation")
	}
}
