package tokenizer

import (
	"testing"

	"github.com/mdrender/htmlcore/event"
	"github.com/mdrender/htmlcore/token"
)

// assertBalanced walks events and fails if any Exit doesn't match the most
// recently opened Enter of the same kind, or if anything is left open.
func assertBalanced(t *testing.T, events []event.Event) {
	t.Helper()
	var stack []token.Kind
	for i, e := range events {
		switch e.Phase {
		case event.Enter:
			stack = append(stack, e.Kind)
		case event.Exit:
			if len(stack) == 0 {
				t.Fatalf("event %d: Exit %s with nothing open", i, e.Kind)
			}
			top := stack[len(stack)-1]
			if top != e.Kind {
				t.Fatalf("event %d: Exit %s does not match innermost open %s", i, e.Kind, top)
			}
			stack = stack[:len(stack)-1]
		}
	}
	if len(stack) != 0 {
		t.Fatalf("unbalanced events: %v left open", stack)
	}
}

func kindsPresent(events []event.Event) map[token.Kind]bool {
	present := make(map[token.Kind]bool)
	for _, e := range events {
		present[e.Kind] = true
	}
	return present
}

func TestTokenizeBalancedEvents(t *testing.T) {
	inputs := []string{
		"# Hi\n",
		"paragraph text\n",
		"- a\n- b\n",
		"1. a\n2. b\n",
		"> quote\n",
		"```go\ncode\n```\n",
		"    indented\n",
		"[go]: https://go.dev \"Go\"\n\nsee [go].\n",
		"*em* and **strong**\n",
		"`code span`\n",
		"---\n",
		"<https://go.dev>\n",
	}
	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			events, codes := Tokenize(input)
			if len(codes) == 0 {
				t.Fatalf("Tokenize(%q) produced no codes", input)
			}
			assertBalanced(t, events)
		})
	}
}

func TestTokenizeHeadingProducesAtxEvents(t *testing.T) {
	events, _ := Tokenize("# Hi\n")
	present := kindsPresent(events)
	for _, want := range []token.Kind{token.HeadingAtx, token.HeadingAtxSequence, token.HeadingAtxText} {
		if !present[want] {
			t.Errorf("Tokenize(heading) missing %s", want)
		}
	}
}

func TestTokenizeListProducesListEvents(t *testing.T) {
	events, _ := Tokenize("- a\n- b\n")
	present := kindsPresent(events)
	for _, want := range []token.Kind{token.ListUnordered, token.ListItem, token.ListItemPrefix, token.ListItemMarker} {
		if !present[want] {
			t.Errorf("Tokenize(list) missing %s", want)
		}
	}
}

func TestTokenizeDefinitionProducesDefinitionEvents(t *testing.T) {
	events, _ := Tokenize("[go]: https://go.dev \"Go\"\n")
	present := kindsPresent(events)
	for _, want := range []token.Kind{token.Definition, token.DefinitionLabelString, token.DefinitionDestinationString, token.DefinitionTitleString} {
		if !present[want] {
			t.Errorf("Tokenize(definition) missing %s", want)
		}
	}
}

func TestTokenizeFencedCodeProducesFenceEvents(t *testing.T) {
	events, _ := Tokenize("```go\ncode\n```\n")
	present := kindsPresent(events)
	for _, want := range []token.Kind{token.CodeFenced, token.CodeFencedFence, token.CodeFencedFenceInfo} {
		if !present[want] {
			t.Errorf("Tokenize(fenced code) missing %s", want)
		}
	}
}

func TestTokenizeEmptyInput(t *testing.T) {
	events, codes := Tokenize("")
	assertBalanced(t, events)
	if len(codes) == 0 {
		t.Fatalf("Tokenize(\"\") should still emit an EOF code")
	}
}
