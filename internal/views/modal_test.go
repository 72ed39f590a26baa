package views

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"boulouiha.dev/internal/models"
)

func TestModalOpenAcquiresDocument(t *testing.T) {
	doc := &fakeDocument{}
	m := NewDetailModal(doc)
	assert.Equal(t, ModalClosed, m.State())

	m.Open(models.Project{Title: "A"})

	assert.Equal(t, ModalOpen, m.State())
	assert.Equal(t, 1, doc.locked)
	assert.Equal(t, 1, doc.listeners.Len())
}

func TestModalEscapeCloses(t *testing.T) {
	doc := &fakeDocument{}
	m := NewDetailModal(doc)
	m.Open(models.Project{Title: "A"})

	doc.press("Enter")
	assert.True(t, m.IsOpen())

	doc.press(KeyEscape)
	assert.False(t, m.IsOpen())
	assert.Zero(t, doc.locked, "scrolling restored")
	assert.Zero(t, doc.listeners.Len(), "listener removed")
}

func TestModalClickTargets(t *testing.T) {
	doc := &fakeDocument{}
	m := NewDetailModal(doc)
	m.Open(models.Project{Title: "A"})

	m.Click(TargetContent)
	assert.True(t, m.IsOpen(), "content clicks must not close")

	m.Click(TargetOverlay)
	assert.False(t, m.IsOpen())
	assert.Zero(t, doc.locked)

	m.Open(models.Project{Title: "A"})
	m.Click(TargetCloseButton)
	assert.False(t, m.IsOpen())
	assert.Zero(t, doc.locked)
	assert.Zero(t, doc.listeners.Len())
}

func TestModalReplaceSelection(t *testing.T) {
	doc := &fakeDocument{}
	m := NewDetailModal(doc)

	m.Open(models.Project{Title: "A", Tech: []string{"Java"}, FullDescription: "a", GitHubURL: "ga", PDFURL: "pa"})
	m.Open(models.Project{Title: "B", Tech: []string{"Go"}, FullDescription: "b"})

	detail, ok := m.Detail()
	require.True(t, ok)
	assert.Equal(t, ModalDetail{Title: "B", Tech: []string{"Go"}, Description: "b"}, detail)
	assert.Equal(t, 1, doc.locked, "no stacked lock")
	assert.Equal(t, 1, doc.listeners.Len(), "no stacked listener")

	doc.press(KeyEscape)
	assert.Zero(t, doc.locked)
	assert.Zero(t, doc.listeners.Len())
}

func TestModalUnmountWhileOpen(t *testing.T) {
	doc := &fakeDocument{}
	m := NewDetailModal(doc)
	m.Open(models.Project{Title: "A"})

	m.Unmount()

	assert.False(t, m.IsOpen())
	assert.Zero(t, doc.locked)
	assert.Zero(t, doc.listeners.Len())
}

func TestModalCloseWhenClosedIsNoop(t *testing.T) {
	doc := &fakeDocument{}
	m := NewDetailModal(doc)

	m.Close()
	m.Unmount()
	m.Click(TargetOverlay)

	assert.Zero(t, doc.locked)
	_, ok := m.Detail()
	assert.False(t, ok)
}

func TestModalDetail(t *testing.T) {
	m := NewDetailModal(nil)
	m.Open(models.Project{
		Title:           "SAE 3.01",
		Tech:            []string{"Java", "Python", "PHP"},
		FullDescription: "full",
		GitHubURL:       "https://github.com/x",
		ExternalURL:     "https://example.com",
		PDFURL:          "/doc.pdf",
	})

	detail, ok := m.Detail()
	require.True(t, ok)
	assert.Len(t, detail.Tech, 3)
	assert.Equal(t, "full", detail.Description)
	assert.Equal(t, []Link{
		{Kind: LinkGitHub, URL: "https://github.com/x"},
		{Kind: LinkPDF, URL: "/doc.pdf"},
	}, detail.Links)
}

func TestModalOmitsAbsentLinks(t *testing.T) {
	m := NewDetailModal(nil)
	m.Open(models.Project{Title: "no links"})

	detail, _ := m.Detail()
	assert.Zero(t, CountLinks(detail.Links, LinkGitHub))
	assert.Zero(t, CountLinks(detail.Links, LinkPDF))
}

func TestModalSelectionIsCopied(t *testing.T) {
	p := models.Project{Title: "A", Tech: []string{"Go"}}
	m := NewDetailModal(nil)
	m.Open(p)

	p.Tech[0] = "changed"
	got, _ := m.Selected()
	assert.Equal(t, "Go", got.Tech[0])
}

func TestKeyListenersRemoveDuringDispatch(t *testing.T) {
	var l KeyListeners
	var calls []string

	var removeFirst func()
	removeFirst = l.Add(func(key string) {
		calls = append(calls, "first:"+key)
		removeFirst()
	})
	l.Add(func(key string) { calls = append(calls, "second:"+key) })

	l.Dispatch("x")
	l.Dispatch("y")

	assert.Equal(t, []string{"first:x", "second:x", "second:y"}, calls)
	assert.Equal(t, 1, l.Len())
}
