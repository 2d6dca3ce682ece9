package main

import (
	"fmt"

	"github.com/fwojciec/docsite"
)

// Run executes the ask command.
func (c *AskCmd) Run(deps *Dependencies) error {
	page, err := findPage(deps, c.Path)
	if err != nil {
		return err
	}

	ref := page.Ref(deps.Config.BaseURL)
	x := &docsite.ContentExtractor{
		Source:       contentSource(deps, page, docsite.FormatText, false),
		Clipboard:    deps.Clipboard,
		Tabs:         deps.Tabs,
		Notifier:     deps.Notifier,
		AssistantURL: deps.Config.AssistantURL,
		Logger:       deps.Logger,
	}

	if !c.Inline {
		x.AskAssistant(deps.Ctx, ref)
		return nil
	}

	if deps.Assistant == nil {
		return docsite.Errorf(docsite.EINVALID, "inline answers require an assistant")
	}

	prompt := x.Prompt(deps.Ctx, ref)
	if c.Question != "" {
		prompt += "\n\nMy question: " + c.Question
	}

	answer, err := deps.Assistant.Answer(deps.Ctx, prompt)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docsite.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, answer)
	return nil
}
