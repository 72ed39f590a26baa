package views

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"boulouiha.dev/internal/models"
)

func TestBuildArchive(t *testing.T) {
	rows := BuildArchive([]models.Project{
		{Title: "A", Date: "2024", Company: "IUT de Blagnac", Tech: []string{"Java", "Python", "PHP"}, PDFURL: "/a.pdf"},
		{Title: "B", Date: "2023-09-01", ExternalURL: "/b", GitHubURL: "https://github.com/b"},
	})
	require.Len(t, rows, 2)

	assert.Equal(t, "2024", rows[0].Year)
	assert.Equal(t, "IUT de Blagnac", rows[0].Company)
	assert.Equal(t, "Java · Python · PHP", rows[0].TechLine)
	assert.Equal(t, []Link{{Kind: LinkPDF, URL: "/a.pdf"}}, rows[0].Links)

	assert.Equal(t, "2023", rows[1].Year)
	assert.Equal(t, "—", rows[1].Company)
	assert.Empty(t, rows[1].TechLine)
	assert.Equal(t, []Link{
		{Kind: LinkExternal, URL: "/b"},
		{Kind: LinkGitHub, URL: "https://github.com/b"},
	}, rows[1].Links)
}

func TestArchivePrefersArchiveTech(t *testing.T) {
	rows := BuildArchive([]models.Project{
		{Title: "A", Tech: []string{"Java", "Python", "MQTT"}, ArchiveTech: []string{"Java"}},
	})
	assert.Equal(t, "Java", rows[0].TechLine)
}

func TestParseYear(t *testing.T) {
	tests := map[string]string{
		"2024":                 "2024",
		"2023-05":              "2023",
		"2022-01-15":           "2022",
		"2021-03-04T10:00:00Z": "2021",
		" 2020 ":               "2020",
		"spring 2020":          "spring 2020",
		"":                     "",
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseYear(in), "ParseYear(%q)", in)
	}
}

func TestJoinTech(t *testing.T) {
	assert.Equal(t, "Java · Python · PHP", JoinTech([]string{"Java", "Python", "PHP"}))
	assert.Equal(t, "Go", JoinTech([]string{"Go"}))
	assert.Equal(t, "", JoinTech(nil))
}

func TestArchiveMount(t *testing.T) {
	view := NewArchiveView(sampleProjects(3))
	rec := &RecordingRevealer{}

	view.Mount(rec, false)
	view.Mount(rec, false)

	require.Len(t, rec.Calls, 2+3)
	table, ok := rec.Config(ElementArchiveTable)
	require.True(t, ok)
	assert.Equal(t, models.NewRevealConfig(200, 0), table)

	row, ok := rec.Config(ArchiveRowElement(2))
	require.True(t, ok)
	assert.Equal(t, 20, row.DelayMs)
}

func TestArchiveMountReducedMotion(t *testing.T) {
	view := NewArchiveView(sampleProjects(3))
	rec := &RecordingRevealer{}

	view.Mount(rec, true)

	assert.Empty(t, rec.Calls)
	assert.Len(t, view.Rows(), 3)
}

func TestAboutMount(t *testing.T) {
	view := NewAboutView(models.Profile{Name: "x", Skills: []string{"Go"}})
	rec := &RecordingRevealer{}

	view.Mount(rec, false)
	view.Mount(rec, false)

	require.Len(t, rec.Calls, 1)
	assert.Equal(t, ElementAbout, rec.Calls[0].Element)
	assert.Equal(t, []string{"Go"}, view.About.Skills)
}

func TestNewRevealConfigClamps(t *testing.T) {
	assert.Equal(t, models.RevealConfig{DelayMs: 0, ViewFactor: 0}, models.NewRevealConfig(-5, -1))
	assert.Equal(t, models.RevealConfig{DelayMs: 10, ViewFactor: 1}, models.NewRevealConfig(10, 3))
}
