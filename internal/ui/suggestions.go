package ui

import "strings"

// Suggestions are the starter prompts listed on an empty transcript, one per backend.
var Suggestions = []string{
	"web: latest developments in solid-state batteries",
	"Explain how the onboarding process works",
	"db: how many orders shipped last month?",
	"file: meeting-notes-2024-q3.txt",
}

// renderWelcome renders the empty-transcript screen. next is the suggestion
// ctrl+n will insert.
func renderWelcome(next int, width int) string {
	var sb strings.Builder

	sb.WriteString(ChatAssistantStyle.Render("Ask the switchboard anything."))
	sb.WriteString("\n\n")
	sb.WriteString(StatusLoadingStyle.Render(wrapText(
		"Start with web:, db: or file: to pick a backend. Everything else goes to RAG search.",
		width)))
	sb.WriteString("\n\n")
	sb.WriteString(FooterDescStyle.Render("Suggestions (ctrl+n):"))
	sb.WriteString("\n")

	for i, s := range Suggestions {
		marker := "  "
		if i == next%len(Suggestions) {
			marker = SuggestionKeyStyle.Render("> ")
		}
		sb.WriteString(marker + SuggestionStyle.Render(s))
		if i < len(Suggestions)-1 {
			sb.WriteString("\n")
		}
	}

	return sb.String()
}
