// Package agent implements an AI assistant answering questions about the
// cryptocurrency market.
package agent

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"google.golang.org/genai"
)

// Agent runs the chat session in a terminal.
type Agent struct {
	w       io.Writer
	r       *bufio.Reader
	Analyst *Expert
	// Format renders the answers before printing, nil prints them as is.
	Format func(string) string
}

// New creates a new Agent reading the user on r and answering on w.
func New(w io.Writer, r io.Reader, analyst *Expert) *Agent {
	return &Agent{
		w:       w,
		r:       bufio.NewReader(r),
		Analyst: analyst,
	}
}

const prompt = "assist> "

// Run starts the interactive session. prompts are asked first, then the user
// is read until "bye" or the end of the input.
func (a *Agent) Run(ctx context.Context, client *genai.Client, prompts ...string) error {
	if a.Analyst.chat == nil {
		if err := a.Analyst.Start(ctx, client); err != nil {
			return err
		}
	}

	fmt.Fprintln(a.w, "Welcome to cmt market assist. Type 'bye' to exit.")

	for {
		fmt.Fprint(a.w, prompt)
		var input string

		// Flush prompts from the list and then ask for the user.
		if len(prompts) > 0 {
			input, prompts = strings.TrimSpace(prompts[0]), prompts[1:]
			if input == "" {
				continue
			}
			fmt.Fprintln(a.w, input)
		} else {
			var err error
			input, err = a.r.ReadString('\n')
			if err == io.EOF {
				fmt.Fprintln(a.w)
				return nil // Clean exit on Ctrl+D
			}
			if err != nil {
				return err
			}
			input = strings.TrimSpace(input)
		}

		switch input {
		case "":
			continue
		case "bye":
			return nil
		}

		content, err := a.Analyst.Ask(ctx, &genai.Part{Text: input})
		if err != nil {
			return err
		}
		answer := Text(content)
		if a.Format != nil {
			answer = a.Format(answer)
		}
		fmt.Fprintln(a.w, answer)
	}
}
