package core

import (
	"errors"
	"fmt"
)

var (
	// ErrNegativeAmount is returned when a counter is changed by a negative amount.
	ErrNegativeAmount = errors.New("counter: negative amount")

	// ErrCounterUnderflow is returned when a decrease would take a counter below zero.
	ErrCounterUnderflow = errors.New("counter: underflow")
)

// Counter is a non-negative tally such as the score or the number of
// remaining blocks. A failed change leaves the value untouched.
type Counter struct {
	value int
}

// NewCounter creates a counter starting at value. Negative values start at zero.
func NewCounter(value int) *Counter {
	return &Counter{value: max(value, 0)}
}

// Increase adds n to the counter.
func (c *Counter) Increase(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeAmount, n)
	}
	c.value += n
	return nil
}

// Decrease subtracts n from the counter.
func (c *Counter) Decrease(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeAmount, n)
	}
	if n > c.value {
		return fmt.Errorf("%w: %d - %d", ErrCounterUnderflow, c.value, n)
	}
	c.value -= n
	return nil
}

// Value returns the current count.
func (c *Counter) Value() int {
	return c.value
}
