// Package md2txt converts Markdown documents to readable plain text.
//
// # Quick Start
//
// For a one-off rewrite, call Transcode:
//
//	text := md2txt.Transcode("# Release\n\n**Ready** to ship")
//
// Transcode never fails: any string is valid input and malformed Markdown
// simply passes through the stages that do not recognize it.
//
// # Converter
//
// Converter wraps the transcoder with the checks and extras a caller
// usually needs around it:
//
//	conv := md2txt.New(
//	    md2txt.WithFrontMatter(true),
//	    md2txt.WithLint(true),
//	)
//
//	result, err := conv.Convert(ctx, md2txt.Input{Markdown: content})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Text)
//
// A Converter holds no per-call state and is safe for concurrent use.
//
// # Transcoding Pipeline
//
// Documents go through a fixed sequence of regex stages (see Stages):
// fenced code, inline code, headings, emphasis, blockquotes, checklists,
// ordered lists, unordered lists, tables, horizontal rules, links and
// images, HTML tags, footnotes, whitespace. Each stage re-reads the whole
// output of the one before it, so code content is not shielded from later
// stages. WithLint reports where that matters.
//
// # Errors
//
// Convert returns sentinel errors that can be checked with errors.Is:
//
//	if errors.Is(err, md2txt.ErrEmptyMarkdown) {
//	    // handle empty input
//	}
//
// Context cancellation is reported as ctx.Err().
package md2txt
