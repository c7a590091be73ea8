package rotation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// spyTarget records the transitions a Binding forwards.
type spyTarget struct {
	calls []string
}

func (s *spyTarget) Pause()       { s.calls = append(s.calls, "pause") }
func (s *spyTarget) Resume()      { s.calls = append(s.calls, "resume") }
func (s *spyTarget) Select(i int) { s.calls = append(s.calls, "select") }

func TestBindingSequences(t *testing.T) {
	tests := []struct {
		name  string
		steps func(b *Binding)
		want  []string
	}{
		{
			name:  "hover then leave",
			steps: func(b *Binding) { b.PointerEnter(); b.PointerLeave() },
			want:  []string{"pause", "resume"},
		},
		{
			name:  "leave without enter",
			steps: func(b *Binding) { b.PointerLeave() },
			want:  nil,
		},
		{
			name: "leave while modal open defers resume",
			steps: func(b *Binding) {
				b.PointerEnter()
				b.OpenModal()
				b.PointerLeave()
			},
			want: []string{"pause", "pause"},
		},
		{
			name: "modal close after leave resumes",
			steps: func(b *Binding) {
				b.PointerEnter()
				b.OpenModal()
				b.PointerLeave()
				b.CloseModal()
			},
			want: []string{"pause", "pause", "resume"},
		},
		{
			name: "modal close while hovering stays paused",
			steps: func(b *Binding) {
				b.OpenModal()
				b.PointerEnter()
				b.CloseModal()
			},
			want: []string{"pause", "pause"},
		},
		{
			name:  "close without open",
			steps: func(b *Binding) { b.CloseModal() },
			want:  nil,
		},
		{
			name:  "select passes through",
			steps: func(b *Binding) { b.OpenModal(); b.Select(2) },
			want:  []string{"pause", "select"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spy := &spyTarget{}
			b := NewBinding(spy)
			tt.steps(b)
			require.Equal(t, tt.want, spy.calls)
		})
	}
}

func TestBindingModalPrecedenceOnController(t *testing.T) {
	c, clk, rec := newTestController(t, Config{ItemCount: 3, Interval: time.Second, Enabled: true})
	b := NewBinding(c)

	b.PointerEnter()
	b.OpenModal()
	b.PointerLeave()
	require.Equal(t, StatePaused, c.State(), "pointer leave must not resume under an open modal")
	require.True(t, b.ModalOpen())
	require.False(t, b.Hovering())

	clk.Step(5 * time.Second)
	require.Empty(t, rec.indexChanges())

	b.CloseModal()
	require.Equal(t, StateRunning, c.State())
	clk.Step(time.Second)
	waitIndex(t, c, 1)
}

func TestBindingHoverPausesWithoutModal(t *testing.T) {
	c, _, _ := newTestController(t, Config{ItemCount: 3, Enabled: true})
	b := NewBinding(c)

	b.PointerEnter()
	require.Equal(t, StatePaused, c.State())
	b.PointerLeave()
	require.Equal(t, StateRunning, c.State())
}
