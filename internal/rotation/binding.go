package rotation

import "sync"

// Target is what a Binding drives. *Controller implements it.
type Target interface {
	Pause()
	Resume()
	Select(i int)
}

// Binding maps pointer and modal interactions onto a Target's pause and
// resume transitions.
//
// There are two pause sources. An open modal is a hard pause; pointer hover
// is a soft pause. Resume is only forwarded once both are clear: leaving the
// region while a modal is open does nothing, and closing the modal while the
// pointer still hovers does nothing. Hover pauses unconditionally, whether or
// not a modal has ever been opened.
type Binding struct {
	target Target

	mu        sync.Mutex
	hovering  bool
	modalOpen bool
}

// NewBinding creates a Binding for t.
func NewBinding(t Target) *Binding {
	return &Binding{target: t}
}

// PointerEnter records hover and pauses.
func (b *Binding) PointerEnter() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.hovering = true
	b.target.Pause()
}

// PointerLeave clears hover and resumes unless a modal is open.
func (b *Binding) PointerLeave() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.hovering {
		return
	}
	b.hovering = false
	if b.modalOpen {
		return
	}
	b.target.Resume()
}

// OpenModal records the hard pause.
func (b *Binding) OpenModal() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.modalOpen = true
	b.target.Pause()
}

// CloseModal clears the hard pause and resumes unless the pointer is still
// hovering.
func (b *Binding) CloseModal() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.modalOpen {
		return
	}
	b.modalOpen = false
	if b.hovering {
		return
	}
	b.target.Resume()
}

// Select forwards an explicit user selection.
func (b *Binding) Select(i int) {
	b.target.Select(i)
}

// Hovering reports whether the pointer is over the region.
func (b *Binding) Hovering() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.hovering
}

// ModalOpen reports whether the hard pause is held.
func (b *Binding) ModalOpen() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.modalOpen
}
