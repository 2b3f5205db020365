// Package pipeline implements the Markdown-to-plain-text transcoding pipeline.
//
// The pipeline is a fixed, ordered list of stages. Each stage is a pure
// string-to-string rewrite that re-scans the whole document with its own
// precompiled pattern:
//
//  1. Fenced code blocks become bordered plain-text blocks
//  2. Inline code spans are decorated
//  3. ATX headings (level 6 down to level 1) become visual markers
//  4. Bold, then italic, then strikethrough markers are converted
//  5. Blockquote prefixes are normalized
//  6. Task-list items become check-box glyphs
//  7. Ordered list items are normalized
//  8. Bullet markers become a uniform glyph
//  9. Table separator rows are dropped and rows reflowed
//  10. Horizontal rules become a fixed-width divider
//  11. Images, then links, become "URL (label)"
//  12. Residual HTML tags are stripped
//  13. Footnote definitions are normalized
//  14. Whitespace is normalized
//
// Order is part of the contract: later stages see text produced or left
// behind by earlier ones. Nothing is protected, so content inside code
// blocks and code spans is still visible to every later stage.
//
// All patterns use Go's RE2 engine, which matches in time linear in the
// input, so no stage can backtrack catastrophically.
package pipeline
