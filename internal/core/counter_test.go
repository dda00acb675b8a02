package core

import (
	"errors"
	"testing"
)

func TestCounter(t *testing.T) {
	c := NewCounter(0)

	if err := c.Increase(5); err != nil {
		t.Fatalf("Increase(5) error = %v", err)
	}
	if err := c.Decrease(3); err != nil {
		t.Fatalf("Decrease(3) error = %v", err)
	}
	if c.Value() != 2 {
		t.Errorf("Value() = %d, expected 2", c.Value())
	}

	err := c.Decrease(10)
	if !errors.Is(err, ErrCounterUnderflow) {
		t.Errorf("Decrease(10) error = %v, expected ErrCounterUnderflow", err)
	}
	if c.Value() != 2 {
		t.Errorf("Value() after failed Decrease = %d, expected 2", c.Value())
	}
}

func TestCounterRejectsNegativeAmounts(t *testing.T) {
	c := NewCounter(4)

	if err := c.Increase(-1); !errors.Is(err, ErrNegativeAmount) {
		t.Errorf("Increase(-1) error = %v, expected ErrNegativeAmount", err)
	}
	if err := c.Decrease(-1); !errors.Is(err, ErrNegativeAmount) {
		t.Errorf("Decrease(-1) error = %v, expected ErrNegativeAmount", err)
	}
	if c.Value() != 4 {
		t.Errorf("Value() = %d, expected 4", c.Value())
	}
}

func TestCounterDecreaseToZero(t *testing.T) {
	c := NewCounter(3)
	if err := c.Decrease(3); err != nil {
		t.Fatalf("Decrease(3) error = %v", err)
	}
	if c.Value() != 0 {
		t.Errorf("Value() = %d, expected 0", c.Value())
	}
	if NewCounter(-7).Value() != 0 {
		t.Error("NewCounter(-7) should start at zero")
	}
}
