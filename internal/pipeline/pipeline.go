package pipeline

import "context"

// Stage is a named, pure, total rewrite of a whole document.
// A stage that finds nothing to rewrite returns its input unchanged.
type Stage struct {
	Name  string
	Apply func(string) string
}

// Stage names, in pipeline order.
const (
	StageFencedCode     = "fenced-code"
	StageInlineCode     = "inline-code"
	StageHeadings       = "headings"
	StageEmphasis       = "emphasis"
	StageBlockquotes    = "blockquotes"
	StageChecklists     = "checklists"
	StageOrderedLists   = "ordered-lists"
	StageUnorderedLists = "unordered-lists"
	StageTables         = "tables"
	StageRules          = "rules"
	StageLinksAndImages = "links-and-images"
	StageStripHTML      = "strip-html"
	StageFootnotes      = "footnotes"
	StageWhitespace     = "whitespace"
)

// Pipeline is an immutable, ordered sequence of stages.
type Pipeline struct {
	stages []Stage
}

// defaultPipeline is built once; several stages depend on strict precedence
// (bold before italic, checklist before bullet, image before link).
var defaultPipeline = Pipeline{stages: []Stage{
	{Name: StageFencedCode, Apply: FencedCode},
	{Name: StageInlineCode, Apply: InlineCode},
	{Name: StageHeadings, Apply: Headings},
	{Name: StageEmphasis, Apply: Emphasis},
	{Name: StageBlockquotes, Apply: Blockquotes},
	{Name: StageChecklists, Apply: Checklists},
	{Name: StageOrderedLists, Apply: OrderedLists},
	{Name: StageUnorderedLists, Apply: UnorderedLists},
	{Name: StageTables, Apply: Tables},
	{Name: StageRules, Apply: Rules},
	{Name: StageLinksAndImages, Apply: LinksAndImages},
	{Name: StageStripHTML, Apply: StripHTML},
	{Name: StageFootnotes, Apply: Footnotes},
	{Name: StageWhitespace, Apply: NormalizeWhitespace},
}}

// Default returns the transcoding pipeline.
func Default() Pipeline {
	return defaultPipeline
}

// Stages returns a copy of the stages in application order.
func (p Pipeline) Stages() []Stage {
	out := make([]Stage, len(p.stages))
	copy(out, p.stages)
	return out
}

// Run threads content through every stage exactly once.
func (p Pipeline) Run(content string) string {
	for _, s := range p.stages {
		content = s.Apply(content)
	}
	return content
}

// RunContext is Run with a cancellation check between stages.
// On cancellation it returns the partially transcoded text and ctx.Err().
func (p Pipeline) RunContext(ctx context.Context, content string) (string, error) {
	for _, s := range p.stages {
		if err := ctx.Err(); err != nil {
			return content, err
		}
		content = s.Apply(content)
	}
	return content, nil
}

// RunAfter applies only the stages that follow the named stage.
// It reports false if no stage has that name.
func (p Pipeline) RunAfter(name, content string) (string, bool) {
	for i, s := range p.stages {
		if s.Name != name {
			continue
		}
		for _, later := range p.stages[i+1:] {
			content = later.Apply(content)
		}
		return content, true
	}
	return content, false
}

// Transcode runs the default pipeline.
func Transcode(content string) string {
	return defaultPipeline.Run(content)
}
