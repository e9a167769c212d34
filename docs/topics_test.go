package docs

import (
	"bufio"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// readmeTopics extracts the "* topic: description" lines of readme.md.
func readmeTopics(t *testing.T) []string {
	t.Helper()
	file, err := os.Open("readme.md")
	if err != nil {
		t.Fatalf("failed to open readme.md: %v", err)
	}
	defer file.Close()

	var topics []string
	topicRegex := regexp.MustCompile(`^\*\s+([^:]+):.*$`)
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if matches := topicRegex.FindStringSubmatch(scanner.Text()); len(matches) > 1 {
			topics = append(topics, strings.TrimSpace(matches[1]))
		}
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("error scanning readme.md: %v", err)
	}
	return topics
}

func TestTopics(t *testing.T) {
	// Every topic listed in readme.md can be loaded, and every topic is
	// listed in readme.md.
	listed := readmeTopics(t)
	for _, topic := range listed {
		if _, err := GetTopic(topic); err != nil {
			t.Errorf("failed to get topic %q: %v", topic, err)
		}
	}

	all, err := GetAllTopics()
	if err != nil {
		t.Fatalf("GetAllTopics() unexpected error = %v", err)
	}
	for _, topic := range all {
		if !slices.Contains(listed, topic) {
			t.Errorf("topic %q is not listed in readme.md", topic)
		}
	}
	if slices.Contains(all, index) {
		t.Errorf("GetAllTopics() = %v, must not contain the index", all)
	}
}

func TestGetTopics(t *testing.T) {
	all, err := GetTopics("*")
	if err != nil {
		t.Fatalf("GetTopics(*) unexpected error = %v", err)
	}
	topics, _ := GetAllTopics()
	for _, topic := range topics {
		content, _ := GetTopic(topic)
		if !strings.Contains(all, content) {
			t.Errorf("GetTopics(*) does not contain topic %q", topic)
		}
	}
	if _, err := GetTopics("table", "nope"); err == nil {
		t.Error("GetTopics() with an unknown topic expected an error")
	}
}

// TestStructure parses every topic: it must start with a level 1 heading, and
// fenced code blocks must declare their language.
func TestStructure(t *testing.T) {
	files, err := filepath.Glob("*.md")
	if err != nil {
		t.Fatal(err)
	}
	parser := goldmark.DefaultParser()
	for _, file := range files {
		t.Run(file, func(t *testing.T) {
			content, err := os.ReadFile(file)
			if err != nil {
				t.Fatalf("failed to read %s: %v", file, err)
			}
			root := parser.Parse(text.NewReader(content))

			first, ok := root.FirstChild().(*ast.Heading)
			if !ok || first.Level != 1 {
				t.Errorf("%s does not start with a level 1 heading", file)
			}

			ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
				if fcb, ok := n.(*ast.FencedCodeBlock); ok && entering {
					if len(fcb.Language(content)) == 0 {
						t.Errorf("%s: fenced code block without a language", file)
					}
				}
				return ast.WalkContinue, nil
			})
		})
	}
}
