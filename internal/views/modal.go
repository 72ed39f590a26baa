package views

import "boulouiha.dev/internal/models"

// ModalState is the detail modal state.
type ModalState int

const (
	ModalClosed ModalState = iota
	ModalOpen
)

func (s ModalState) String() string {
	if s == ModalOpen {
		return "open"
	}
	return "closed"
}

// Target is what a click landed on while the modal is open.
type Target int

const (
	TargetOverlay Target = iota
	TargetContent
	TargetCloseButton
)

// ModalDetail is everything the open modal renders.
type ModalDetail struct {
	Title       string   `json:"title"`
	Tech        []string `json:"tech"`
	Description string   `json:"description"`
	Links       []Link   `json:"links"`
}

// DetailModal shows one selected project over the page. While open it
// holds the document scroll lock and one Escape listener; every path
// back to closed releases both.
type DetailModal struct {
	doc            Document
	state          ModalState
	subject        models.Project
	removeListener func()
}

// NewDetailModal creates a closed modal bound to doc.
func NewDetailModal(doc Document) *DetailModal {
	if doc == nil {
		doc = nopDocument{}
	}
	return &DetailModal{doc: doc}
}

// Open shows p, replacing any current subject.
func (m *DetailModal) Open(p models.Project) {
	m.subject = p.Clone()
	if m.state == ModalOpen {
		return
	}
	m.state = ModalOpen
	m.doc.LockScroll()
	m.removeListener = m.doc.AddKeyListener(m.handleKey)
}

// Close returns to the closed state and releases the document.
func (m *DetailModal) Close() {
	if m.state != ModalOpen {
		return
	}
	m.state = ModalClosed
	m.subject = models.Project{}
	if m.removeListener != nil {
		m.removeListener()
		m.removeListener = nil
	}
	m.doc.UnlockScroll()
}

// Click handles a click on target. Clicks inside the content panel stop there.
func (m *DetailModal) Click(target Target) {
	switch target {
	case TargetOverlay, TargetCloseButton:
		m.Close()
	}
}

// Unmount tears the modal down, closing it if needed.
func (m *DetailModal) Unmount() {
	m.Close()
}

func (m *DetailModal) handleKey(key string) {
	if key == KeyEscape {
		m.Close()
	}
}

// State returns the current state.
func (m *DetailModal) State() ModalState {
	return m.state
}

// IsOpen reports whether a project is shown.
func (m *DetailModal) IsOpen() bool {
	return m.state == ModalOpen
}

// Selected returns the shown project.
func (m *DetailModal) Selected() (models.Project, bool) {
	if m.state != ModalOpen {
		return models.Project{}, false
	}
	return m.subject.Clone(), true
}

// Detail returns the rendered contents of the open modal.
func (m *DetailModal) Detail() (ModalDetail, bool) {
	p, ok := m.Selected()
	if !ok {
		return ModalDetail{}, false
	}
	return ModalDetail{
		Title:       p.Title,
		Tech:        p.Tech,
		Description: p.FullDescription,
		Links:       linksFor(p, modalLinkOrder),
	}, true
}
