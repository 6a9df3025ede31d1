package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTarget_DispatchOrder(t *testing.T) {
	target := NewTarget()

	var calls []string
	target.AddEventListener("click", func() { calls = append(calls, "first") })
	target.AddEventListener("click", func() { calls = append(calls, "second") })
	target.AddEventListener("keydown", func() { calls = append(calls, "other") })

	n := target.Dispatch("click")

	assert.Equal(t, 2, n)
	assert.Equal(t, []string{"first", "second"}, calls)
}

func TestTarget_DispatchUnknown(t *testing.T) {
	target := NewTarget()
	assert.Equal(t, 0, target.Dispatch("click"))
}

func TestTarget_NilListenerIgnored(t *testing.T) {
	target := NewTarget()
	target.AddEventListener("click", nil)
	assert.Equal(t, 0, target.Dispatch("click"))
}

func TestTarget_ListenerRegistersDuringDispatch(t *testing.T) {
	target := NewTarget()

	var late int
	target.AddEventListener("click", func() {
		target.AddEventListener("click", func() { late++ })
	})

	assert.Equal(t, 1, target.Dispatch("click"))
	assert.Equal(t, 0, late)
	assert.Equal(t, 2, target.Dispatch("click"))
	assert.Equal(t, 1, late)
}

func TestTarget_ZeroValue(t *testing.T) {
	var target Target
	assert.Equal(t, 0, target.Dispatch("click"))

	var clicks int
	target.AddEventListener("click", func() { clicks++ })

	assert.Equal(t, 1, target.Dispatch("click"))
	assert.Equal(t, 1, clicks)
}
