package search

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/craftedwonders/storefront/internal/client/models"
)

func TestMatches(t *testing.T) {
	p := models.Product{Name: "Clay Pot", Material: "clay", Description: "hand thrown"}

	tests := []struct {
		name string
		term string
		want bool
	}{
		{"empty term matches", "", true},
		{"name match", "clay p", true},
		{"case insensitive", "CLAY", true},
		{"material match", "Clay", true},
		{"description match", "thrown", true},
		{"no match", "bamboo", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Matches(tt.term, p))
		})
	}
}

func TestMatches_AnyFieldIsEnough(t *testing.T) {
	products := []models.Product{
		{Name: "Clay Pot"},
		{Name: "Bamboo Lamp"},
	}

	var hits []string
	for _, p := range products {
		if Matches("clay", p) {
			hits = append(hits, p.Name)
		}
	}
	assert.Equal(t, []string{"Clay Pot"}, hits)
}

func TestDebouncer_EmitsLastValueOnly(t *testing.T) {
	d := NewDebouncer(30 * time.Millisecond)
	defer d.Stop()

	d.Submit("c")
	d.Submit("cl")
	d.Submit("clay")

	select {
	case got := <-d.C():
		assert.Equal(t, "clay", got)
	case <-time.After(time.Second):
		t.Fatal("debouncer never fired")
	}

	// nothing else pending
	select {
	case got := <-d.C():
		t.Fatalf("unexpected extra emission: %q", got)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestDebouncer_RestartsOnEachSubmit(t *testing.T) {
	d := NewDebouncer(60 * time.Millisecond)
	defer d.Stop()

	d.Submit("first")
	time.Sleep(20 * time.Millisecond)
	d.Submit("second")

	select {
	case got := <-d.C():
		assert.Equal(t, "second", got)
	case <-time.After(time.Second):
		t.Fatal("debouncer never fired")
	}
}

func TestDebouncer_StopCancelsPending(t *testing.T) {
	d := NewDebouncer(30 * time.Millisecond)

	d.Submit("clay")
	d.Stop()

	select {
	case got := <-d.C():
		t.Fatalf("emission after Stop: %q", got)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestDebouncer_KeepsFreshestWhenReceiverLags(t *testing.T) {
	d := NewDebouncer(time.Millisecond)
	defer d.Stop()

	d.Submit("old")
	require.Eventually(t, func() bool { return len(d.out) == 1 }, time.Second, time.Millisecond)

	d.Submit("new")
	time.Sleep(20 * time.Millisecond)

	assert.Equal(t, "new", <-d.C())
}
