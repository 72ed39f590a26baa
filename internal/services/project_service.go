package services

import (
	"errors"
	"fmt"

	"boulouiha.dev/internal/content"
	"boulouiha.dev/internal/models"
	"boulouiha.dev/internal/views"
)

// ErrProjectNotFound is returned for indices outside the record list.
var ErrProjectNotFound = errors.New("project not found")

// ProjectService handles project-related operations
type ProjectService struct {
	store *content.Store
}

// NewProjectService creates a new ProjectService
func NewProjectService(store *content.Store) *ProjectService {
	return &ProjectService{store: store}
}

// GetAll returns all projects in display order
func (s *ProjectService) GetAll() []models.Project {
	return s.store.Projects()
}

// GetByIndex returns the project at position index
func (s *ProjectService) GetByIndex(index int) (models.Project, error) {
	p, ok := s.store.Project(index)
	if !ok {
		return models.Project{}, fmt.Errorf("index %d: %w", index, ErrProjectNotFound)
	}
	return p, nil
}

// Count returns the number of projects
func (s *ProjectService) Count() int {
	return s.store.Len()
}

// Archive returns the archive table rows
func (s *ProjectService) Archive() []views.ArchiveRow {
	return views.BuildArchive(s.store.Projects())
}
