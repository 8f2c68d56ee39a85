package schema

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Message is a single turn in a conversation. Content is any JSON value,
// usually a string or an array of content blocks, and is sent verbatim.
type Message struct {
	Role    string `json:"role"`
	Content any    `json:"content"`
}

////////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

////////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// UserMessage returns a user turn with the given content
func UserMessage(content any) Message {
	return Message{Role: RoleUser, Content: content}
}

// AssistantMessage returns an assistant turn with the given content
func AssistantMessage(content any) Message {
	return Message{Role: RoleAssistant, Content: content}
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (m Message) String() string {
	return Stringify(m)
}
