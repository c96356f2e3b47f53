package services

import (
	"encoding/json"
	"strings"

	"solo-ide-backend/internal/models"
)

// DecodeOr decodes raw as JSON into T. If decoding fails or valid rejects the
// result, fallback is returned instead.
func DecodeOr[T any](raw string, fallback T, valid func(T) bool) T {
	var v T
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return fallback
	}
	if valid != nil && !valid(v) {
		return fallback
	}
	return v
}

// rawProject keeps pointers so a missing key is distinguishable from an empty file.
type rawProject struct {
	IndexHTML *string `json:"index.html"`
	StyleCSS  *string `json:"style.css"`
	ScriptJS  *string `json:"script.js"`
	Readme    *string `json:"README.md"`
}

func (p *rawProject) complete() bool {
	return p != nil && p.IndexHTML != nil && p.StyleCSS != nil && p.ScriptJS != nil && p.Readme != nil
}

// projectEnvelope accepts both the bare object and a {"files": {...}} wrapper.
type projectEnvelope struct {
	rawProject
	Files *rawProject `json:"files"`
}

func (e projectEnvelope) project() *rawProject {
	if e.Files.complete() {
		return e.Files
	}
	return &e.rawProject
}

// ParseProject turns the model's free-text reply into the four project files.
// Any reply that is not a JSON object carrying all four files yields
// ParseFailedProject.
func ParseProject(raw string) models.ProjectFiles {
	text := stripCodeFence(raw)

	valid := func(e projectEnvelope) bool { return e.project().complete() }
	env := DecodeOr(text, projectEnvelope{}, valid)
	if !valid(env) {
		// Try to extract the outermost JSON object
		start := strings.Index(text, "{")
		end := strings.LastIndex(text, "}")
		if start >= 0 && end > start {
			env = DecodeOr(text[start:end+1], projectEnvelope{}, valid)
		}
	}
	if !valid(env) {
		return ParseFailedProject()
	}

	p := env.project()
	return models.ProjectFiles{
		IndexHTML: *p.IndexHTML,
		StyleCSS:  *p.StyleCSS,
		ScriptJS:  *p.ScriptJS,
		Readme:    *p.Readme,
	}
}

func stripCodeFence(raw string) string {
	text := strings.TrimSpace(raw)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}

// DemoProject is served by /generate when no API key is configured.
func DemoProject() models.ProjectFiles {
	return models.ProjectFiles{
		IndexHTML: "<!DOCTYPE html>\n<html>\n<head>\n  <title>Demo Project</title>\n  <link rel=\"stylesheet\" href=\"style.css\">\n</head>\n<body>\n  <h1>Hello from the demo project</h1>\n  <button id=\"btn\">Click me</button>\n  <script src=\"script.js\"></script>\n</body>\n</html>",
		StyleCSS:  "body { background: #eee; font-family: Arial, sans-serif; text-align: center; padding-top: 40px; }\nbutton { padding: 8px 16px; }",
		ScriptJS:  "document.getElementById('btn').addEventListener('click', () => {\n  alert('Hello from script.js!');\n});",
		Readme:    "# Demo Project\nAI is not configured, so this is a fixed demo project.\nSet GEMINI_API_KEY to generate real projects.",
	}
}

// ParseFailedProject is served by /generate when the model reply is not valid project JSON.
func ParseFailedProject() models.ProjectFiles {
	return models.ProjectFiles{
		IndexHTML: "<!DOCTYPE html>\n<html>\n<head><title>Generation failed</title></head>\n<body>\n<h1>Could not parse the AI response</h1>\n</body>\n</html>",
		StyleCSS:  "/* Could not parse the AI response */",
		ScriptJS:  "console.log('Could not parse the AI response');",
		Readme:    "# Generation failed\nThe AI reply was not a valid project. Try generating again.",
	}
}
