package content

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedContent(t *testing.T) {
	store, err := Embedded()
	require.NoError(t, err)

	assert.Equal(t, 9, store.Len())

	first, ok := store.Project(0)
	require.True(t, ok)
	assert.Contains(t, first.Title, "Race for Water")
	assert.NotEmpty(t, first.GitHubURL)
	assert.Empty(t, first.PDFURL)
	assert.Equal(t, "2024", first.Date)

	profile := store.Profile()
	assert.Len(t, profile.Skills, 12)
	assert.Len(t, profile.Bio, 3)
	assert.NotEmpty(t, profile.Email)
}

func TestProjectOutOfRange(t *testing.T) {
	store, err := Embedded()
	require.NoError(t, err)

	_, ok := store.Project(-1)
	assert.False(t, ok)
	_, ok = store.Project(store.Len())
	assert.False(t, ok)
}

func TestStoreReturnsCopies(t *testing.T) {
	store, err := Embedded()
	require.NoError(t, err)

	projects := store.Projects()
	projects[0].Title = "changed"
	projects[0].Tech[0] = "changed"

	again, _ := store.Project(0)
	assert.NotEqual(t, "changed", again.Title)
	assert.NotEqual(t, "changed", again.Tech[0])
}

func TestLoadFromFS(t *testing.T) {
	fsys := fstest.MapFS{
		"projects.yaml": {Data: []byte(`
projects:
  - title: One
    tech: [Go]
  - title: Two
    company: ACME
`)},
		"profile.yaml": {Data: []byte("name: Someone\n")},
	}

	store, err := Load(fsys)
	require.NoError(t, err)
	assert.Equal(t, 2, store.Len())
	assert.Equal(t, "Someone", store.Profile().Name)

	two, _ := store.Project(1)
	assert.Equal(t, "ACME", two.Company)
	assert.Empty(t, two.Tech)
}

func TestLoadRejectsMissingTitle(t *testing.T) {
	fsys := fstest.MapFS{
		"projects.yaml": {Data: []byte("projects:\n  - title: ok\n  - tech: [Go]\n")},
		"profile.yaml":  {Data: []byte("name: x\n")},
	}

	_, err := Load(fsys)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidRecord)
	assert.Contains(t, err.Error(), "project 1")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(fstest.MapFS{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "projects.yaml")
}
