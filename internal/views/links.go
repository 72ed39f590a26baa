package views

import "boulouiha.dev/internal/models"

// LinkKind identifies an outbound project link.
type LinkKind string

const (
	LinkGitHub   LinkKind = "github"
	LinkExternal LinkKind = "external"
	LinkPDF      LinkKind = "pdf"
)

// Link is an outbound anchor. URLs are never fetched or validated.
type Link struct {
	Kind LinkKind `json:"kind"`
	URL  string   `json:"url"`
}

var (
	cardLinkOrder    = []LinkKind{LinkGitHub, LinkPDF, LinkExternal}
	modalLinkOrder   = []LinkKind{LinkGitHub, LinkPDF}
	archiveLinkOrder = []LinkKind{LinkExternal, LinkGitHub, LinkPDF}
)

// linksFor returns the present links of p in the given order.
func linksFor(p models.Project, order []LinkKind) []Link {
	var links []Link
	for _, kind := range order {
		if url := linkURL(p, kind); url != "" {
			links = append(links, Link{Kind: kind, URL: url})
		}
	}
	return links
}

func linkURL(p models.Project, kind LinkKind) string {
	switch kind {
	case LinkGitHub:
		return p.GitHubURL
	case LinkExternal:
		return p.ExternalURL
	case LinkPDF:
		return p.PDFURL
	}
	return ""
}

// CountLinks returns how many links of kind appear in links.
func CountLinks(links []Link, kind LinkKind) int {
	n := 0
	for _, l := range links {
		if l.Kind == kind {
			n++
		}
	}
	return n
}
