package statemachine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"laundry-service-api/models"
)

func pendingOrder() *models.Order {
	now := time.Now().Add(-time.Hour)
	return &models.Order{
		ID:        1,
		Status:    models.StatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestForwardTransitions(t *testing.T) {
	order := pendingOrder()
	require.NoError(t, Apply(order, models.StatusInProgress))
	assert.Equal(t, models.StatusInProgress, order.Status)
	assert.Nil(t, order.CompletedAt)

	require.NoError(t, Apply(order, models.StatusCompleted))
	assert.Equal(t, models.StatusCompleted, order.Status)
	require.NotNil(t, order.CompletedAt)
}

func TestSkipToCompleted(t *testing.T) {
	order := pendingOrder()
	require.NoError(t, Apply(order, models.StatusCompleted))
	assert.Equal(t, models.StatusCompleted, order.Status)
	require.NotNil(t, order.CompletedAt)
}

func TestBackwardTransitionsRejected(t *testing.T) {
	cases := []struct {
		from, to models.OrderStatus
	}{
		{models.StatusInProgress, models.StatusPending},
		{models.StatusCompleted, models.StatusPending},
		{models.StatusCompleted, models.StatusInProgress},
	}
	for _, tc := range cases {
		order := pendingOrder()
		order.Status = tc.from
		err := Apply(order, tc.to)
		assert.ErrorIs(t, err, ErrInvalidTransition, "%s → %s", tc.from, tc.to)
		assert.Equal(t, tc.from, order.Status, "order mutated on rejected transition")
	}
}

func TestUnknownStatusRejected(t *testing.T) {
	order := pendingOrder()
	err := Apply(order, models.OrderStatus("shipped"))
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestRepeatTransitionIsIdempotent(t *testing.T) {
	order := pendingOrder()
	require.NoError(t, Apply(order, models.StatusInProgress))
	first := order.UpdatedAt

	require.NoError(t, Apply(order, models.StatusInProgress))
	assert.Equal(t, models.StatusInProgress, order.Status)
	assert.False(t, order.UpdatedAt.Before(first), "UpdatedAt went backwards")
}

func TestCompletedAtSetOnlyWhenCompleted(t *testing.T) {
	order := pendingOrder()
	require.NoError(t, Apply(order, models.StatusCompleted))
	require.NotNil(t, order.CompletedAt)
	stamp := *order.CompletedAt

	// Repeating completed keeps the original completion time.
	require.NoError(t, Apply(order, models.StatusCompleted))
	require.NotNil(t, order.CompletedAt)
	assert.Equal(t, stamp, *order.CompletedAt)

	// Forcing the order back clears the completion time.
	Force(order, models.StatusPending)
	assert.Equal(t, models.StatusPending, order.Status)
	assert.Nil(t, order.CompletedAt)
}

func TestForceAllowsAnyStatus(t *testing.T) {
	order := pendingOrder()
	order.Status = models.StatusCompleted
	now := time.Now()
	order.CompletedAt = &now

	Force(order, models.StatusInProgress)
	assert.Equal(t, models.StatusInProgress, order.Status)
	assert.Nil(t, order.CompletedAt)

	Force(order, models.StatusCompleted)
	assert.Equal(t, models.StatusCompleted, order.Status)
	assert.NotNil(t, order.CompletedAt)
}

func TestValidTransitionsFrom(t *testing.T) {
	assert.ElementsMatch(t,
		[]models.OrderStatus{models.StatusInProgress, models.StatusCompleted},
		ValidTransitionsFrom(models.StatusPending))
	assert.ElementsMatch(t,
		[]models.OrderStatus{models.StatusCompleted},
		ValidTransitionsFrom(models.StatusInProgress))
	assert.Empty(t, ValidTransitionsFrom(models.StatusCompleted))
}
