package toast

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/art-rater/internal/model"
)

func TestNewService(t *testing.T) {
	service := NewService()
	assert.Equal(t, DefaultDuration, service.Duration())
	assert.Empty(t, service.Active())

	custom := NewService(WithDuration(3 * time.Second))
	assert.Equal(t, 3*time.Second, custom.Duration())

	ignored := NewService(WithDuration(0))
	assert.Equal(t, DefaultDuration, ignored.Duration())
}

func TestPush(t *testing.T) {
	service := NewService()
	defer service.Close()

	id := service.Push(model.ToastSuccess, "Successfully rated")
	require.NotEmpty(t, id)

	active := service.Active()
	require.Len(t, active, 1)
	assert.Equal(t, id, active[0].ID)
	assert.Equal(t, model.ToastSuccess, active[0].Kind)
	assert.Equal(t, "Successfully rated", active[0].Description)
	assert.Equal(t, DefaultDuration, active[0].ExpiresAt.Sub(active[0].CreatedAt))
}

func TestPush_NoDeduplication(t *testing.T) {
	service := NewService()
	defer service.Close()

	first := service.Push(model.ToastError, "Rating is required.")
	second := service.Push(model.ToastError, "Rating is required.")

	assert.NotEqual(t, first, second)
	active := service.Active()
	require.Len(t, active, 2)
	assert.Equal(t, first, active[0].ID)
	assert.Equal(t, second, active[1].ID)
}

func TestDismiss(t *testing.T) {
	service := NewService()
	defer service.Close()

	keep := service.Push(model.ToastSuccess, "keep")
	drop := service.Push(model.ToastError, "drop")

	assert.True(t, service.Dismiss(drop))
	assert.False(t, service.Dismiss(drop), "second dismiss should report false")
	assert.False(t, service.Dismiss("unknown"))

	active := service.Active()
	require.Len(t, active, 1)
	assert.Equal(t, keep, active[0].ID)
}

func TestAutoExpire(t *testing.T) {
	service := NewService(WithDuration(20 * time.Millisecond))
	defer service.Close()

	service.Push(model.ToastSuccess, "short lived")
	require.Len(t, service.Active(), 1)

	assert.Eventually(t, func() bool {
		return len(service.Active()) == 0
	}, time.Second, 5*time.Millisecond)
}

func TestSetDuration(t *testing.T) {
	service := NewService()
	defer service.Close()

	service.SetDuration(50 * time.Millisecond)
	service.SetDuration(-1)
	assert.Equal(t, 50*time.Millisecond, service.Duration())

	service.Push(model.ToastError, "boom")
	msg := service.Active()[0]
	assert.Equal(t, 50*time.Millisecond, msg.ExpiresAt.Sub(msg.CreatedAt))
}

func TestUpdateCallback(t *testing.T) {
	service := NewService()
	defer service.Close()

	var mu sync.Mutex
	var snapshots [][]model.ToastMessage
	service.SetUpdateCallback(func(messages []model.ToastMessage) {
		mu.Lock()
		snapshots = append(snapshots, messages)
		mu.Unlock()
	})

	id := service.Push(model.ToastSuccess, "hello")
	service.Dismiss(id)

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, snapshots, 2)
	assert.Len(t, snapshots[0], 1)
	assert.Empty(t, snapshots[1])
}

func TestClose(t *testing.T) {
	service := NewService(WithDuration(time.Hour))
	service.Push(model.ToastSuccess, "one")
	service.Push(model.ToastError, "two")

	service.Close()
	assert.Empty(t, service.Active())
}
