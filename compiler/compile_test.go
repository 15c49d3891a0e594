package compiler_test

import (
	"testing"

	"github.com/mdrender/htmlcore/compiler"
	"github.com/mdrender/htmlcore/tokenizer"
)

func render(t *testing.T, input string, opts compiler.Options) string {
	t.Helper()
	events, codes := tokenizer.Tokenize(input)
	return compiler.Compile(events, codes, opts)
}

func TestCompileHeadings(t *testing.T) {
	for input, want := range map[string]string{
		"# Hi\n":        "<h1>Hi</h1>\n",
		"## Two\n":      "<h2>Two</h2>\n",
		"Title\n===\n":  "<h1>Title</h1>\n",
		"Title\n---\n":  "<h2>Title</h2>\n",
		"### Trim ###\n": "<h3>Trim</h3>\n",
	} {
		t.Run(input, func(t *testing.T) {
			got := render(t, input, compiler.Options{})
			if got != want {
				t.Errorf("Compile(%q) = %q, want %q", input, got, want)
			}
		})
	}
}

func TestCompileParagraphsAndEmphasis(t *testing.T) {
	for input, want := range map[string]string{
		"hello\n":              "<p>hello</p>\n",
		"*em*\n":                "<p><em>em</em></p>\n",
		"**strong**\n":          "<p><strong>strong</strong></p>\n",
		"a\nb\n":                "<p>a\nb</p>\n",
		"line  \nbreak\n":       "<p>line<br />\nbreak</p>\n",
	} {
		t.Run(input, func(t *testing.T) {
			got := render(t, input, compiler.Options{})
			if got != want {
				t.Errorf("Compile(%q) = %q, want %q", input, got, want)
			}
		})
	}
}

func TestCompileCodeSpanTrim(t *testing.T) {
	got := render(t, "` x `\n", compiler.Options{})
	want := "<p><code>x</code></p>\n"
	if got != want {
		t.Errorf("Compile(code span) = %q, want %q", got, want)
	}
}

func TestCompileThematicBreak(t *testing.T) {
	for _, input := range []string{"---\n", "***\n", "___\n"} {
		t.Run(input, func(t *testing.T) {
			got := render(t, input, compiler.Options{})
			want := "<hr />\n"
			if got != want {
				t.Errorf("Compile(%q) = %q, want %q", input, got, want)
			}
		})
	}
}

func TestCompileFencedCode(t *testing.T) {
	input := "```go\ncode\n```\n"
	want := "<pre><code class=\"language-go\">code\n</code></pre>\n"
	got := render(t, input, compiler.Options{})
	if got != want {
		t.Errorf("Compile(%q) = %q, want %q", input, got, want)
	}
}

func TestCompileTightAndLooseLists(t *testing.T) {
	tight := "- a\n- b\n"
	wantTight := "<ul>\n<li>a</li>\n<li>b</li>\n</ul>\n"
	if got := render(t, tight, compiler.Options{}); got != wantTight {
		t.Errorf("Compile(tight list) = %q, want %q", got, wantTight)
	}

	loose := "- a\n\n- b\n"
	wantLoose := "<ul>\n<li>\n<p>a</p>\n</li>\n<li>\n<p>b</p>\n</li>\n</ul>\n"
	if got := render(t, loose, compiler.Options{}); got != wantLoose {
		t.Errorf("Compile(loose list) = %q, want %q", got, wantLoose)
	}
}

func TestCompileOrderedListStart(t *testing.T) {
	input := "3. a\n4. b\n"
	want := "<ol start=\"3\">\n<li>a</li>\n<li>b</li>\n</ol>\n"
	got := render(t, input, compiler.Options{})
	if got != want {
		t.Errorf("Compile(%q) = %q, want %q", input, got, want)
	}
}

func TestCompileLinkReferenceDefinition(t *testing.T) {
	input := "[go]: https://go.dev \"The Go site\"\n\nSee [go].\n"
	want := "<p>See <a href=\"https://go.dev\" title=\"The Go site\">go</a>.</p>\n"
	got := render(t, input, compiler.Options{})
	if got != want {
		t.Errorf("Compile(reference definition) = %q, want %q", got, want)
	}
}

func TestCompileInlineLinkAndImage(t *testing.T) {
	link := render(t, "[site](https://go.dev)\n", compiler.Options{})
	wantLink := "<p><a href=\"https://go.dev\">site</a></p>\n"
	if link != wantLink {
		t.Errorf("Compile(inline link) = %q, want %q", link, wantLink)
	}

	image := render(t, "![alt](pic.png)\n", compiler.Options{})
	wantImage := "<p><img src=\"pic.png\" alt=\"alt\" /></p>\n"
	if image != wantImage {
		t.Errorf("Compile(image) = %q, want %q", image, wantImage)
	}
}

func TestCompileUnresolvedReferenceFallsBackToLiteralText(t *testing.T) {
	input := "See [nope].\n"
	want := "<p>See [nope].</p>\n"
	got := render(t, input, compiler.Options{})
	if got != want {
		t.Errorf("Compile(unresolved reference) = %q, want %q", got, want)
	}
}

func TestCompileUnresolvedImageReferenceFallsBackToLiteralText(t *testing.T) {
	input := "![nope]\n"
	want := "<p>![nope]</p>\n"
	got := render(t, input, compiler.Options{})
	if got != want {
		t.Errorf("Compile(unresolved image reference) = %q, want %q", got, want)
	}
}

func TestCompileBlockedProtocolIsDropped(t *testing.T) {
	input := "[bad](javascript:alert(1))\n"
	want := "<p><a href=\"\">bad</a></p>\n"
	got := render(t, input, compiler.Options{})
	if got != want {
		t.Errorf("Compile(blocked protocol) = %q, want %q", got, want)
	}
}

func TestCompileDangerousProtocolAllowed(t *testing.T) {
	input := "[bad](javascript:alert(1))\n"
	got := render(t, input, compiler.Options{AllowDangerousProtocol: true})
	want := "<p><a href=\"javascript:alert(1)\">bad</a></p>\n"
	if got != want {
		t.Errorf("Compile(allowed dangerous protocol) = %q, want %q", got, want)
	}
}

func TestCompileCharacterReference(t *testing.T) {
	for input, want := range map[string]string{
		"&amp;\n":    "<p>&amp;</p>\n",
		"&#65;\n":    "<p>A</p>\n",
		"&#x41;\n":   "<p>A</p>\n",
		"&invalid;\n": "<p>&amp;invalid;</p>\n",
	} {
		t.Run(input, func(t *testing.T) {
			got := render(t, input, compiler.Options{})
			if got != want {
				t.Errorf("Compile(%q) = %q, want %q", input, got, want)
			}
		})
	}
}

func TestCompileBlockQuote(t *testing.T) {
	input := "> quoted\n> text\n"
	want := "<blockquote>\n<p>quoted\ntext</p>\n</blockquote>\n"
	got := render(t, input, compiler.Options{})
	if got != want {
		t.Errorf("Compile(blockquote) = %q, want %q", got, want)
	}
}

func TestCompileAutolink(t *testing.T) {
	for input, want := range map[string]string{
		"<https://go.dev>\n":     "<p><a href=\"https://go.dev\">https://go.dev</a></p>\n",
		"<hello@example.com>\n": "<p><a href=\"mailto:hello@example.com\">hello@example.com</a></p>\n",
	} {
		t.Run(input, func(t *testing.T) {
			got := render(t, input, compiler.Options{})
			if got != want {
				t.Errorf("Compile(%q) = %q, want %q", input, got, want)
			}
		})
	}
}
