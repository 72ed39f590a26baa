package models

// Project represents a portfolio project
type Project struct {
	Title            string   `json:"title" yaml:"title"`
	Tech             []string `json:"tech" yaml:"tech"`
	ShortDescription string   `json:"short_description" yaml:"short_description"`
	FullDescription  string   `json:"full_description" yaml:"full_description"`
	GitHubURL        string   `json:"github_url,omitempty" yaml:"github"`
	ExternalURL      string   `json:"external_url,omitempty" yaml:"external"`
	PDFURL           string   `json:"pdf_url,omitempty" yaml:"pdf"`

	// Archive-only display fields.
	Date        string   `json:"date,omitempty" yaml:"date"`
	Company     string   `json:"company,omitempty" yaml:"company"`
	ArchiveTech []string `json:"archive_tech,omitempty" yaml:"archive_tech"`
}

// ProjectList wraps the array of projects
type ProjectList struct {
	Projects []Project `json:"projects" yaml:"projects"`
}

// ArchiveStack returns the tech list shown in the archive table
func (p Project) ArchiveStack() []string {
	if len(p.ArchiveTech) > 0 {
		return p.ArchiveTech
	}
	return p.Tech
}

// Clone returns a deep copy so callers cannot mutate shared slices
func (p Project) Clone() Project {
	c := p
	c.Tech = append([]string(nil), p.Tech...)
	if p.ArchiveTech != nil {
		c.ArchiveTech = append([]string(nil), p.ArchiveTech...)
	}
	return c
}
