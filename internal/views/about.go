package views

import "boulouiha.dev/internal/models"

// ElementAbout is the about section container.
const ElementAbout Element = "about"

// About is the rendered about section.
type About struct {
	Name           string
	Bio            []string
	Skills         []string
	Languages      []models.Language
	Certifications []models.Certification
}

// BuildAbout maps the profile into the about section.
func BuildAbout(p models.Profile) About {
	return About{
		Name:           p.Name,
		Bio:            p.Bio,
		Skills:         p.Skills,
		Languages:      p.Languages,
		Certifications: p.Certifications,
	}
}

// AboutView reveals the about container once.
type AboutView struct {
	About   About
	mounted bool
}

// NewAboutView builds the about section view.
func NewAboutView(p models.Profile) *AboutView {
	return &AboutView{About: BuildAbout(p)}
}

// Mount registers the container reveal once, unless reducedMotion.
func (a *AboutView) Mount(r Revealer, reducedMotion bool) {
	if a.mounted {
		return
	}
	a.mounted = true
	if reducedMotion {
		return
	}
	revealOrNop(r).Reveal(ElementAbout, models.DefaultRevealConfig())
}
