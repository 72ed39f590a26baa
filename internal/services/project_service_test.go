package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"boulouiha.dev/internal/content"
	"boulouiha.dev/internal/models"
)

func newTestService() *ProjectService {
	return NewProjectService(content.NewStore([]models.Project{
		{Title: "First", Date: "2024-01", Tech: []string{"Go"}},
		{Title: "Second", Company: "IUT", Tech: []string{"Java", "PHP"}, ArchiveTech: []string{"Java"}},
	}, models.Profile{}))
}

func TestGetAll(t *testing.T) {
	s := newTestService()
	all := s.GetAll()
	require.Len(t, all, 2)
	assert.Equal(t, "First", all[0].Title)
	assert.Equal(t, 2, s.Count())

	all[0].Title = "changed"
	assert.Equal(t, "First", s.GetAll()[0].Title)
}

func TestGetByIndex(t *testing.T) {
	s := newTestService()

	p, err := s.GetByIndex(1)
	require.NoError(t, err)
	assert.Equal(t, "Second", p.Title)

	for _, idx := range []int{-1, 2, 100} {
		_, err := s.GetByIndex(idx)
		assert.ErrorIs(t, err, ErrProjectNotFound, "index %d", idx)
	}
}

func TestArchive(t *testing.T) {
	rows := newTestService().Archive()
	require.Len(t, rows, 2)

	assert.Equal(t, "2024", rows[0].Year)
	assert.Equal(t, "—", rows[0].Company)
	assert.Equal(t, "IUT", rows[1].Company)
	assert.Equal(t, []string{"Java"}, rows[1].Tech)
}
