package docsite

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms HTML content into Markdown.
	// The input should be clean HTML with page chrome removed.
	Convert(html string) (string, error)
}
