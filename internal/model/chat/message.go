package chat

// Role identifies the author of a chat turn.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Valid reports whether r is one of the roles forwarded upstream.
func (r Role) Valid() bool {
	switch r {
	case RoleSystem, RoleUser, RoleAssistant:
		return true
	default:
		return false
	}
}

// Message is a single conversation turn. Never persisted.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Reply is the outcome of one chat exchange.
type Reply struct {
	Reply  string `json:"reply"`
	Crisis bool   `json:"crisis"`
}

// HistoryEntry is a caller-supplied turn exactly as decoded from JSON.
// Role and Content may hold any JSON value so that one malformed entry
// never fails the whole request; only strings are usable.
type HistoryEntry struct {
	Role    any `json:"role"`
	Content any `json:"content"`
}

// Message converts e when its role is known and its content is text.
func (e HistoryEntry) Message() (Message, bool) {
	name, ok := e.Role.(string)
	if !ok {
		return Message{}, false
	}
	role := Role(name)
	if !role.Valid() {
		return Message{}, false
	}
	content, ok := e.Content.(string)
	if !ok {
		return Message{}, false
	}
	return Message{Role: role, Content: content}, true
}
