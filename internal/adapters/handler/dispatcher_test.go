package handler

import (
	"context"
	"errors"
	"memberbot/internal/core/domain"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockMessageHandler struct {
	mock.Mock
	wg *sync.WaitGroup
}

func (m *MockMessageHandler) OnMessage(ctx context.Context, message *domain.Message) error {
	defer m.wg.Done()
	args := m.Called(ctx, message)
	return args.Error(0)
}

func TestDispatcher_Enqueue(t *testing.T) {
	d := NewDispatcher(&MockMessageHandler{}, 1, 1, time.Second)

	assert.True(t, d.Enqueue(Event{Message: &domain.Message{ID: "1"}}))
	assert.False(t, d.Enqueue(Event{Message: &domain.Message{ID: "2"}}))
}

func TestDispatcher_Run(t *testing.T) {
	wg := &sync.WaitGroup{}
	h := &MockMessageHandler{wg: wg}

	first := &domain.Message{ID: "1"}
	second := &domain.Message{ID: "2"}

	h.On("OnMessage", mock.MatchedBy(func(ctx context.Context) bool {
		_, ok := ctx.Deadline()
		return ok && zerolog.Ctx(ctx) != nil
	}), first).Return(nil).Once()
	h.On("OnMessage", mock.Anything, second).Return(errors.New("send failed")).Once()

	d := NewDispatcher(h, 2, 4, time.Second)

	ctx, cancel := context.WithCancel(t.Context())
	done := make(chan error)
	go func() {
		done <- d.Run(ctx)
	}()

	wg.Add(2)
	require.True(t, d.Enqueue(Event{Message: first, Logger: zerolog.Nop()}))
	require.True(t, d.Enqueue(Event{Message: second, Logger: zerolog.Nop()}))
	wg.Wait()

	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("dispatcher did not stop after cancel")
	}

	h.AssertExpectations(t)
}
