package services

import "strings"

const projectPrompt = `You are a senior front-end developer. Create a small, self-contained web project.

CRITICAL: Return ONLY a valid JSON object. No preamble, no markdown, no backticks.

The object must have exactly these four keys, each mapping to the full file contents as a string:
{"index.html": "string", "style.css": "string", "script.js": "string", "README.md": "string"}

Rules:
- index.html must link style.css and script.js
- script.js must run without errors in a modern browser
- README.md explains what the project does and how to open it
`

// BuildProjectPrompt returns the fixed instruction used by /generate.
func BuildProjectPrompt() string {
	return projectPrompt
}

// BuildAutocompletePrompt wraps a code snippet in the completion instruction.
func BuildAutocompletePrompt(code string) string {
	var b strings.Builder
	b.WriteString("Complete this code without errors:\n\n")
	b.WriteString(code)
	b.WriteString("\n\n### Completed code:")
	return b.String()
}
