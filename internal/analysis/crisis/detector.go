package crisis

import (
	"regexp"
	"strings"
)

// Response is the fixed supportive reply returned instead of a model answer.
const Response = "I'm really sorry you're going through this. You deserve care and support.\n\n" +
	"If you feel in immediate danger, please contact **local emergency services** or a " +
	"trusted person nearby right now.\n\n" +
	"You can also consider reaching out to a **local mental health professional** or a " +
	"confidential helpline in your country. If you can, talk to someone you trust about how you feel.\n\n" +
	"I'm here to listen. Would you like to tell me more about what's been hardest lately?"

// phrases are matched case-insensitively anywhere in the text. English only.
var phrases = []string{
	`suicide`,
	`kill myself`,
	`end my life`,
	`self-harm`,
	`self harm`,
	`hurt myself`,
	`harm myself`,
	`kill (?:him|her|them|someone)`,
	`i don['’]?t want to live`,
	`i can['’]?t go on`,
	`overdose`,
	`cutting`,
	`i want to die`,
}

var pattern = compile(phrases)

func compile(list []string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)(` + strings.Join(list, "|") + `)`)
}

// Detect reports whether text contains crisis language. It is a keyword
// filter: both false positives and false negatives are expected.
func Detect(text string) bool {
	return pattern.MatchString(text)
}

// Match returns the first crisis phrase found in text, lower-cased with
// typographic apostrophes folded, or "". The result is always one of the
// listed phrases, so it is safe to log.
func Match(text string) string {
	found := pattern.FindString(text)
	if found == "" {
		return ""
	}
	return strings.ReplaceAll(strings.ToLower(found), "’", "'")
}
