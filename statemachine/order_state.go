package statemachine

import (
	"errors"
	"fmt"
	"time"

	"laundry-service-api/models"
)

// ErrInvalidTransition is returned for any move the lifecycle forbids.
var ErrInvalidTransition = errors.New("invalid transition")

// Transition defines a valid state change
type Transition struct {
	From models.OrderStatus
	To   models.OrderStatus
}

// validTransitions is the authoritative state machine definition. The
// lifecycle only moves forward: an order never leaves completed, and a
// started order is never reset to pending. Corrections go through Force,
// which is an explicit administrator override, never this table.
var validTransitions = []Transition{
	{From: models.StatusPending, To: models.StatusInProgress},
	{From: models.StatusInProgress, To: models.StatusCompleted},
	// A drop-off washed on the spot can skip straight to completed.
	{From: models.StatusPending, To: models.StatusCompleted},
}

// transitionKey is used to look up valid transitions quickly
type transitionKey struct {
	From models.OrderStatus
	To   models.OrderStatus
}

var transitionMap = func() map[transitionKey]bool {
	m := make(map[transitionKey]bool)
	for _, t := range validTransitions {
		m[transitionKey{t.From, t.To}] = true
	}
	return m
}()

// ValidTransitionsFrom returns all valid next states from a given state
func ValidTransitionsFrom(status models.OrderStatus) []models.OrderStatus {
	var nexts []models.OrderStatus
	for _, t := range validTransitions {
		if t.From == status {
			nexts = append(nexts, t.To)
		}
	}
	return nexts
}

// CanTransition checks whether an order may move from one state to another.
// Repeating the current state is a permitted no-op.
func CanTransition(from, to models.OrderStatus) error {
	if from == to {
		return nil
	}
	if transitionMap[transitionKey{From: from, To: to}] {
		return nil
	}
	return fmt.Errorf("%w: %s → %s; valid next states from %s: %s",
		ErrInvalidTransition, from, to, from, describeValidFrom(from))
}

// Apply moves the order to a new status after validating the transition.
// It refreshes UpdatedAt and keeps CompletedAt set exactly when the order
// is completed. The caller persists the result.
func Apply(order *models.Order, to models.OrderStatus) error {
	if err := CanTransition(order.Status, to); err != nil {
		return err
	}
	setStatus(order, to)
	return nil
}

// Force moves the order to any status, skipping the transition table.
// Administrator override for correcting mistakes; the HTTP layer gates it.
func Force(order *models.Order, to models.OrderStatus) {
	setStatus(order, to)
}

func setStatus(order *models.Order, to models.OrderStatus) {
	now := time.Now()
	order.Status = to
	order.UpdatedAt = now
	if to == models.StatusCompleted {
		if order.CompletedAt == nil {
			order.CompletedAt = &now
		}
	} else {
		order.CompletedAt = nil
	}
}

func describeValidFrom(status models.OrderStatus) string {
	nexts := ValidTransitionsFrom(status)
	if len(nexts) == 0 {
		return "none (terminal state)"
	}
	result := ""
	for i, s := range nexts {
		if i > 0 {
			result += ", "
		}
		result += string(s)
	}
	return result
}

// GetAllTransitions returns the full state machine for documentation
func GetAllTransitions() []Transition {
	return validTransitions
}
