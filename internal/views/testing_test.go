package views

import (
	"fmt"

	"boulouiha.dev/internal/models"
)

// fakeDocument counts scroll locks and holds listeners like a browser document.
type fakeDocument struct {
	locked    int
	listeners KeyListeners
}

func (d *fakeDocument) LockScroll()   { d.locked++ }
func (d *fakeDocument) UnlockScroll() { d.locked-- }
func (d *fakeDocument) AddKeyListener(fn func(string)) func() {
	return d.listeners.Add(fn)
}

func (d *fakeDocument) press(key string) {
	d.listeners.Dispatch(key)
}

func sampleProjects(n int) []models.Project {
	projects := make([]models.Project, n)
	for i := range projects {
		projects[i] = models.Project{
			Title:            fmt.Sprintf("Project %d", i+1),
			Tech:             []string{"Go"},
			ShortDescription: "short",
			FullDescription:  fmt.Sprintf("full %d", i+1),
		}
	}
	return projects
}
