// Package render turns parsed card markup into a presentation tree and
// writes that tree to a terminal or to sanitized HTML.
//
// Renderer.Render is total: every markup block, including unrecognized ones,
// maps to exactly one Node. Syntax highlighting of code blocks is delegated to
// a Highlighter; without one, code is emitted as a single unstyled token.
package render
