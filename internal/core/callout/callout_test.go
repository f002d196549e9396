package callout

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOpen_SingleSlot(t *testing.T) {
	c := New(0)

	c.Open("name")
	assert.True(t, c.IsOpen("name"))

	c.Open("age")
	assert.True(t, c.IsOpen("age"))
	assert.False(t, c.IsOpen("name"), "opening one dismisses the other")
}

func TestDebouncedDismiss(t *testing.T) {
	c := New(300 * time.Millisecond)
	c.Open("name")

	c.RequestDismiss()
	assert.True(t, c.PendingDismiss())

	c.Tick(100 * time.Millisecond)
	assert.True(t, c.IsOpen("name"), "still within the grace period")

	c.Tick(250 * time.Millisecond)
	assert.Equal(t, "", c.Active(), "countdown expiry closes the callout")
	assert.False(t, c.PendingDismiss())
}

func TestCancelDismiss(t *testing.T) {
	c := New(300 * time.Millisecond)
	c.Open("name")

	c.RequestDismiss()
	c.Tick(200 * time.Millisecond)
	c.CancelDismiss()

	c.Tick(time.Second)
	assert.True(t, c.IsOpen("name"), "re-entry within the window keeps it open")
}

func TestReopenResetsCountdown(t *testing.T) {
	c := New(300 * time.Millisecond)
	c.Open("name")
	c.RequestDismiss()

	c.Open("name")
	c.Tick(time.Second)
	assert.True(t, c.IsOpen("name"), "open cancels the pending dismissal")
}

func TestRequestDismiss_NoopWhenClosed(t *testing.T) {
	c := New(0)
	c.RequestDismiss()
	assert.False(t, c.PendingDismiss())
}
