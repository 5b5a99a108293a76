package models

type PageSection struct {
	Heading    string   `json:"heading,omitempty" yaml:"heading"`
	Paragraphs []string `json:"paragraphs,omitempty" yaml:"paragraphs"`
	Items      []string `json:"items,omitempty" yaml:"items"`
}

// Page is one of the fixed informational pages (about, privacy, ...).
type Page struct {
	Slug        string        `json:"slug" yaml:"slug"`
	Title       string        `json:"title" yaml:"title"`
	Summary     string        `json:"summary,omitempty" yaml:"summary"`
	LastUpdated string        `json:"lastUpdated,omitempty" yaml:"lastUpdated"`
	Sections    []PageSection `json:"sections" yaml:"sections"`
	ContactForm bool          `json:"contactForm,omitempty" yaml:"contactForm"`
}
