package ai

import "strings"

// PromptTemplate describes the companion persona as titled bullet sections.
type PromptTemplate struct {
	Intro  string
	Goals  []string
	Safety []string
	Style  []string
}

var companionTemplate = PromptTemplate{
	Intro: "You are a supportive, non-judgmental mental health companion.",
	Goals: []string{
		"Be empathetic, warm, validating feelings.",
		"Ask gentle, open-ended questions.",
		"Offer self-care tips and evidence-informed psychoeducation at a high level.",
		"Encourage seeking professional help when appropriate.",
	},
	Safety: []string{
		"If user expresses intent to harm self/others, or severe crisis, respond with a supportive crisis message and guide them to contact local emergency services or trusted people immediately. Do not give medical advice or instructions for self-harm.",
		"Do NOT diagnose or prescribe. Encourage professional support.",
	},
	Style: []string{
		"Short paragraphs. Simple language. Avoid clinical jargon unless requested.",
	},
}

// SystemPrompt is sent as the first message of every relayed conversation.
var SystemPrompt = companionTemplate.Build()

// Build renders the template as plain text.
func (t PromptTemplate) Build() string {
	var b strings.Builder
	b.WriteString(t.Intro)
	b.WriteString("\n")
	writeSection(&b, "Goals", t.Goals)
	b.WriteString("\n")
	writeSection(&b, "Safety", t.Safety)
	b.WriteString("\n")
	writeSection(&b, "Style", t.Style)
	return b.String()
}

func writeSection(b *strings.Builder, title string, items []string) {
	b.WriteString(title)
	b.WriteString(":\n")
	for _, item := range items {
		b.WriteString("- ")
		b.WriteString(item)
		b.WriteString("\n")
	}
}
