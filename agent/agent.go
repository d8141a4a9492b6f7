// Package agent implements the interactive AI assistant over a holdings
// report.
package agent

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// Advisor is a chat session that answers questions about the user's
// portfolio. The full holdings report is part of the system instruction,
// and Google Search grounds answers about the securities themselves.
type Advisor struct {
	w      io.Writer
	r      *bufio.Reader
	report string
	chat   *genai.Chat

	// Render post-processes model replies before printing (e.g. markdown
	// rendering on a terminal). Nil prints replies verbatim.
	Render func(string) string
}

// New creates an Advisor over the given holdings report (markdown).
func New(w io.Writer, r io.Reader, report string) *Advisor {
	return &Advisor{
		w:      w,
		r:      bufio.NewReader(r),
		report: report,
	}
}

// Start creates the underlying chat session.
func (a *Advisor) Start(ctx context.Context, client *genai.Client) error {
	config := &genai.GenerateContentConfig{
		Tools: []*genai.Tool{
			{GoogleSearch: &genai.GoogleSearch{}},
		},
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are a financial assistant answering questions about the user's
			investment portfolio. The current holdings report is included below;
			treat it as the single source of truth about what the user owns.
			Use Google Search when the user asks about recent news, prices, or
			anything not present in the report, and say so when you do.
			Keep answers short and concrete, in markdown.

			` + a.report}}},
	}
	chat, err := client.Chats.Create(ctx, model, config, nil)
	if err != nil {
		return err
	}
	a.chat = chat
	return nil
}

// Ask sends one question and returns the model's text reply.
func (a *Advisor) Ask(ctx context.Context, question string) (string, error) {
	resp, err := a.chat.Send(ctx, &genai.Part{Text: question})
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from assistant")
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}

const prompt = "assist> "

// Run starts the interactive REPL session. Initial prompts, if any, are
// consumed before reading from the user. Typing 'bye' (or Ctrl+D) exits.
func (a *Advisor) Run(ctx context.Context, client *genai.Client, prompts ...string) error {
	if a.chat == nil {
		if err := a.Start(ctx, client); err != nil {
			return err
		}
	}

	fmt.Fprintln(a.w, "Welcome to mm portfolio assist. Type 'bye' to exit.")

	for {
		fmt.Fprint(a.w, prompt)
		var input string

		if len(prompts) > 0 {
			input, prompts = prompts[0], prompts[1:]
			input = strings.TrimSpace(input)
			if input == "" {
				continue
			}
			fmt.Fprintln(a.w, input)
		} else {
			var err error
			input, err = a.r.ReadString('\n')
			if err != nil {
				if err == io.EOF {
					return nil // Clean exit on Ctrl+D.
				}
				return err
			}
		}

		if strings.TrimSpace(input) == "bye" {
			return nil
		}

		reply, err := a.Ask(ctx, input)
		if err != nil {
			return err
		}
		if a.Render != nil {
			reply = a.Render(reply)
		}
		fmt.Fprintln(a.w, reply)
	}
}
