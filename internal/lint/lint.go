// Package lint reports Markdown constructs that the plain-text transcoder
// renders in surprising ways.
//
// The document is parsed with goldmark for reporting only; the transcoder
// itself never sees the AST. Findings cover:
//   - code blocks and code spans whose content later stages will rewrite
//   - fence languages unknown to chroma's lexer registry
//   - opening fences with no closing fence
//   - image alt text that the transcoder discards
package lint

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"

	"github.com/alnah/go-md2txt/internal/pipeline"
)

// ErrParse indicates the Markdown source could not be walked.
var ErrParse = errors.New("markdown parse failed")

// Kind classifies a finding.
type Kind string

// Finding kinds.
const (
	KindCodeRewritten     Kind = "code-rewritten"
	KindUnknownLanguage   Kind = "unknown-language"
	KindUnterminatedFence Kind = "unterminated-fence"
	KindImageAltDropped   Kind = "image-alt-dropped"
)

// Finding is a single diagnostic, anchored to a 1-based source line.
type Finding struct {
	Kind    Kind
	Line    int
	Message string
}

// String formats the finding as "line N: kind: message".
func (f Finding) String() string {
	return fmt.Sprintf("line %d: %s: %s", f.Line, f.Kind, f.Message)
}

// Linter inspects Markdown source.
type Linter interface {
	Lint(ctx context.Context, content string) ([]Finding, error)
}

// GoldmarkLinter walks a goldmark AST built with the GFM and footnote
// extensions, the same dialect the source documents are written in.
type GoldmarkLinter struct {
	md goldmark.Markdown
}

// Compile-time interface implementation check.
var _ Linter = (*GoldmarkLinter)(nil)

// New creates a GoldmarkLinter.
func New() *GoldmarkLinter {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,      // Tables, strikethrough, autolinks, task lists
			extension.Footnote, // [^1] footnotes
		),
	)
	return &GoldmarkLinter{md: md}
}

// Lint returns findings sorted by line. Goldmark has no context support,
// so parsing runs in a goroutine and the call returns early on cancellation.
func (l *GoldmarkLinter) Lint(ctx context.Context, content string) ([]Finding, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	type result struct {
		findings []Finding
		err      error
	}

	done := make(chan result, 1)

	go func() {
		findings, err := l.lint([]byte(content))
		done <- result{findings: findings, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case r := <-done:
		return r.findings, r.err
	}
}

func (l *GoldmarkLinter) lint(source []byte) ([]Finding, error) {
	doc := l.md.Parser().Parse(text.NewReader(source))

	var findings []Finding
	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch node := n.(type) {
		case *ast.FencedCodeBlock:
			findings = append(findings, checkFencedBlock(node, source)...)
			return ast.WalkSkipChildren, nil
		case *ast.CodeSpan:
			if f, ok := checkCodeSpan(node, source); ok {
				findings = append(findings, f)
			}
			return ast.WalkSkipChildren, nil
		case *ast.Image:
			if f, ok := checkImage(node, source); ok {
				findings = append(findings, f)
			}
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	for _, fence := range scanFences(string(source)) {
		if !fence.closed {
			findings = append(findings, Finding{
				Kind:    KindUnterminatedFence,
				Line:    fence.line,
				Message: "code fence is never closed; its content is transcoded as ordinary text",
			})
		}
	}

	sortFindings(findings)
	return findings, nil
}

// checkFencedBlock reports unknown languages and bodies that later stages rewrite.
func checkFencedBlock(n *ast.FencedCodeBlock, source []byte) []Finding {
	var findings []Finding

	line := fenceLine(n, source)
	if line == 0 {
		return nil
	}

	if lang := string(n.Language(source)); lang != "" && lexers.Get(lang) == nil {
		findings = append(findings, Finding{
			Kind:    KindUnknownLanguage,
			Line:    line,
			Message: fmt.Sprintf("fence language %q is not a known language", lang),
		})
	}

	var body bytes.Buffer
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		body.Write(seg.Value(source))
	}

	code := strings.TrimSpace(body.String())
	if code == "" {
		return findings
	}
	if rewrittenAfter(pipeline.StageFencedCode, code) {
		findings = append(findings, Finding{
			Kind:    KindCodeRewritten,
			Line:    line,
			Message: "code block content will be rewritten by later transcoding stages",
		})
	}
	return findings
}

// checkCodeSpan reports code spans whose content later stages rewrite.
// The span is checked in its decorated form so line-anchored rules see a
// backtick first, as they do in the document.
func checkCodeSpan(n *ast.CodeSpan, source []byte) (Finding, bool) {
	content, offset := inlineText(n, source)
	if content == "" || offset < 0 {
		return Finding{}, false
	}

	decorated := "`" + content + "``"
	if !rewrittenAfter(pipeline.StageInlineCode, decorated) {
		return Finding{}, false
	}
	return Finding{
		Kind:    KindCodeRewritten,
		Line:    lineAt(source, offset),
		Message: fmt.Sprintf("code span %q will be rewritten by later transcoding stages", content),
	}, true
}

// checkImage reports images whose alt text will be dropped.
func checkImage(n *ast.Image, source []byte) (Finding, bool) {
	alt, offset := inlineText(n, source)
	if strings.TrimSpace(alt) == "" || offset < 0 {
		return Finding{}, false
	}
	return Finding{
		Kind:    KindImageAltDropped,
		Line:    lineAt(source, offset),
		Message: fmt.Sprintf("alt text %q of image %q is dropped", alt, n.Destination),
	}, true
}

// rewrittenAfter reports whether the stages after the named one change s
// beyond whitespace normalization.
func rewrittenAfter(stage, s string) bool {
	out, ok := pipeline.Default().RunAfter(stage, s)
	if !ok {
		return false
	}
	return out != pipeline.NormalizeWhitespace(s)
}

// fenceLine returns the 1-based line of the opening fence, or 0 if unknown.
func fenceLine(n *ast.FencedCodeBlock, source []byte) int {
	if n.Lines().Len() > 0 {
		return lineAt(source, n.Lines().At(0).Start) - 1
	}
	if n.Info != nil {
		return lineAt(source, n.Info.Segment.Start)
	}
	return 0
}

// inlineText concatenates the text under n and returns the offset of its
// first segment, or -1 if n holds no source-backed text.
func inlineText(n ast.Node, source []byte) (string, int) {
	var b strings.Builder
	offset := -1

	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch t := c.(type) {
		case *ast.Text:
			if offset < 0 {
				offset = t.Segment.Start
			}
			b.Write(t.Segment.Value(source))
		case *ast.String:
			b.Write(t.Value)
		default:
			s, off := inlineText(c, source)
			if offset < 0 {
				offset = off
			}
			b.WriteString(s)
		}
	}
	return b.String(), offset
}

// lineAt converts a byte offset to a 1-based line number.
func lineAt(source []byte, offset int) int {
	if offset > len(source) {
		offset = len(source)
	}
	return bytes.Count(source[:offset], []byte("\n")) + 1
}

func sortFindings(findings []Finding) {
	sort.SliceStable(findings, func(i, j int) bool {
		if findings[i].Line != findings[j].Line {
			return findings[i].Line < findings[j].Line
		}
		return findings[i].Kind < findings[j].Kind
	})
}
