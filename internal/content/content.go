// Package content loads the compiled-in portfolio data.
//
// Records are read once and never mutated afterwards; every accessor hands
// out copies.
package content

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"gopkg.in/yaml.v3"

	"boulouiha.dev/internal/models"
)

const (
	projectsFile = "projects.yaml"
	profileFile  = "profile.yaml"
)

// ErrInvalidRecord is returned when a project record fails its presence checks.
var ErrInvalidRecord = errors.New("invalid project record")

//go:embed data/*.yaml
var embedded embed.FS

// Store is the immutable, ordered project list plus the profile.
type Store struct {
	projects []models.Project
	profile  models.Profile
}

// Embedded loads the content compiled into the binary.
func Embedded() (*Store, error) {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		return nil, fmt.Errorf("open embedded content: %w", err)
	}
	return Load(sub)
}

// Load reads projects.yaml and profile.yaml from fsys.
func Load(fsys fs.FS) (*Store, error) {
	var list models.ProjectList
	if err := readYAML(fsys, projectsFile, &list); err != nil {
		return nil, err
	}
	for i, p := range list.Projects {
		if strings.TrimSpace(p.Title) == "" {
			return nil, fmt.Errorf("project %d: missing title: %w", i, ErrInvalidRecord)
		}
	}

	var profile models.Profile
	if err := readYAML(fsys, profileFile, &profile); err != nil {
		return nil, err
	}

	return NewStore(list.Projects, profile), nil
}

// NewStore builds a store from already-decoded records.
func NewStore(projects []models.Project, profile models.Profile) *Store {
	s := &Store{profile: profile}
	s.projects = make([]models.Project, len(projects))
	for i, p := range projects {
		s.projects[i] = p.Clone()
	}
	return s
}

func readYAML(fsys fs.FS, name string, out any) error {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return nil
}

// Len returns the number of projects.
func (s *Store) Len() int {
	return len(s.projects)
}

// Projects returns a copy of every project in source order.
func (s *Store) Projects() []models.Project {
	out := make([]models.Project, len(s.projects))
	for i, p := range s.projects {
		out[i] = p.Clone()
	}
	return out
}

// Project returns the record at position i.
func (s *Store) Project(i int) (models.Project, bool) {
	if i < 0 || i >= len(s.projects) {
		return models.Project{}, false
	}
	return s.projects[i].Clone(), true
}

// Profile returns the biography data.
func (s *Store) Profile() models.Profile {
	p := s.profile
	p.Bio = append([]string(nil), s.profile.Bio...)
	p.Skills = append([]string(nil), s.profile.Skills...)
	p.Languages = append([]models.Language(nil), s.profile.Languages...)
	p.Certifications = append([]models.Certification(nil), s.profile.Certifications...)
	p.Social = append([]models.NamedLink(nil), s.profile.Social...)
	p.Nav = append([]models.NamedLink(nil), s.profile.Nav...)
	return p
}
