package mock

import "github.com/fwojciec/docsite"

var _ docsite.Converter = (*Converter)(nil)

// Converter is a mock implementation of docsite.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
