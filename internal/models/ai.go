package models

// AskRequest is the /ask payload. Mock mode reads Message, live mode reads Question.
type AskRequest struct {
	Message  string `json:"message"`
	Question string `json:"question"`
}

// ReplyResponse is the mock-mode /ask reply.
type ReplyResponse struct {
	Reply string `json:"reply"`
}

// AnswerResponse is the live-mode /ask reply.
type AnswerResponse struct {
	Answer string `json:"answer"`
}

type AutocompleteRequest struct {
	Code string `json:"code"`
}

type AutocompleteResponse struct {
	Completion string `json:"completion"`
}

// ProjectFiles is the four-file web project returned by /generate.
type ProjectFiles struct {
	IndexHTML string `json:"index.html"`
	StyleCSS  string `json:"style.css"`
	ScriptJS  string `json:"script.js"`
	Readme    string `json:"README.md"`
}

type GenerateResponse struct {
	Files ProjectFiles `json:"files"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
