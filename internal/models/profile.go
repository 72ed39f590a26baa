package models

// Profile holds the biography shown in the about section and site chrome
type Profile struct {
	Name           string          `json:"name" yaml:"name"`
	Email          string          `json:"email" yaml:"email"`
	Bio            []string        `json:"bio" yaml:"bio"`
	Skills         []string        `json:"skills" yaml:"skills"`
	Languages      []Language      `json:"languages" yaml:"languages"`
	Certifications []Certification `json:"certifications" yaml:"certifications"`
	Social         []NamedLink     `json:"social" yaml:"social"`
	Nav            []NamedLink     `json:"nav" yaml:"nav"`
}

// Language is a spoken language and proficiency level
type Language struct {
	Name  string `json:"name" yaml:"name"`
	Level string `json:"level" yaml:"level"`
}

// Certification links to a certificate document
type Certification struct {
	Name        string `json:"name" yaml:"name"`
	URL         string `json:"url" yaml:"url"`
	Description string `json:"description" yaml:"description"`
}

// NamedLink is a labelled URL
type NamedLink struct {
	Name string `json:"name" yaml:"name"`
	URL  string `json:"url" yaml:"url"`
}
