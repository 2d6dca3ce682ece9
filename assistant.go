package docsite

import "context"

// Assistant answers a prompt built by BuildAssistantPrompt directly,
// as an alternative to handing it to the external chat tool.
type Assistant interface {
	Answer(ctx context.Context, prompt string) (string, error)
}
