package effects_test

import (
	"errors"
	"testing"
	"time"

	"github.com/on-the-ground/tableize_go/effects"
	"github.com/stretchr/testify/assert"
)

func TestTimed(t *testing.T) {
	v, span, err := effects.Timed(func() (int, error) {
		time.Sleep(5 * time.Millisecond)
		return 7, nil
	})
	assert.NoError(t, err)
	assert.Equal(t, 7, v)
	assert.GreaterOrEqual(t, span.Duration(), 5*time.Millisecond)
}

func TestTimed_KeepsError(t *testing.T) {
	boom := errors.New("boom")
	_, span, err := effects.Timed(func() (string, error) {
		return "", boom
	})
	assert.ErrorIs(t, err, boom)
	assert.GreaterOrEqual(t, span.Duration(), time.Duration(0))
}

func TestNewTimeSpan_OrdersEnds(t *testing.T) {
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := from.Add(time.Hour)
	span := effects.NewTimeSpan(to, from)
	assert.Equal(t, from, span.Start())
	assert.Equal(t, time.Hour, span.Duration())
}
