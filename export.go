package docsite

import (
	"strings"
	"time"
)

// FullDocsFilename is the name of the downloadable documentation file.
const FullDocsFilename = "wallet-docs.md"

// DocSection is one static section of the full documentation download.
type DocSection struct {
	Title string
	Path  string
	Body  string // Markdown
}

// BuildFullDocs concatenates sections under a top-level heading and appends
// a footer with the generation time in ISO-8601 format. Sections are
// separated by horizontal rules. A section body that already starts with a
// heading is used as is.
func BuildFullDocs(title string, sections []DocSection, now time.Time) string {
	var sb strings.Builder
	sb.WriteString("# ")
	sb.WriteString(title)
	sb.WriteString("\n\n")

	for i, s := range sections {
		if i > 0 {
			sb.WriteString("\n\n---\n\n")
		}
		body := strings.TrimSpace(s.Body)
		if !strings.HasPrefix(body, "#") {
			sb.WriteString("## ")
			sb.WriteString(s.Title)
			sb.WriteString("\n\n")
		}
		sb.WriteString(body)
	}

	sb.WriteString("\n\n---\n\n")
	sb.WriteString("_Generated on ")
	sb.WriteString(now.UTC().Format(time.RFC3339))
	sb.WriteString("_\n")
	return sb.String()
}

// PageSections returns one section per page in the given order.
func PageSections(pages []*Page) []DocSection {
	sections := make([]DocSection, len(pages))
	for i, p := range pages {
		sections[i] = DocSection{Title: p.Title, Path: p.Path, Body: p.Markdown}
	}
	return sections
}
