package janitor_test

import (
	"context"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/texcache/internal/core/ports/mocks"
	"go.trai.ch/texcache/internal/engine/janitor"
	"go.uber.org/mock/gomock"
)

func quietLogger(ctrl *gomock.Controller) *mocks.MockLogger {
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()
	return log
}

func TestJanitor_SweepsOnEveryTick(t *testing.T) {
	ctrl := gomock.NewController(t)
	cache := mocks.NewMockTextureCache(ctrl)

	swept := make(chan struct{})
	cache.EXPECT().SweepUnused(gomock.Any()).DoAndReturn(func(context.Context) int {
		swept <- struct{}{}
		return 1
	}).Times(2)

	clock := clockwork.NewFakeClock()
	j := janitor.New(cache, quietLogger(ctrl), clock, time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- j.Run(ctx) }()

	waitCtx, waitCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer waitCancel()
	require.NoError(t, clock.BlockUntilContext(waitCtx, 1))

	for range 2 {
		clock.Advance(time.Minute)
		select {
		case <-swept:
		case <-waitCtx.Done():
			t.Fatal("janitor did not sweep")
		}
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-waitCtx.Done():
		t.Fatal("janitor did not stop")
	}
}

func TestJanitor_Disabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	cache := mocks.NewMockTextureCache(ctrl)

	j := janitor.New(cache, quietLogger(ctrl), clockwork.NewFakeClock(), 0)

	assert.NoError(t, j.Run(context.Background()))
	assert.Equal(t, time.Duration(0), j.Interval())
}
