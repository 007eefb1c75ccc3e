package model

const (
	ChannelEmail = "email"
)

// Message is a channel-agnostic notification payload.
type Message struct {
	Email *EmailMessage `json:"email,omitempty"`
}

// EmailMessage is one outbound mail: HTML content to a recipient list with
// optional in-memory attachments.
type EmailMessage struct {
	Title       string       `json:"title"`
	Content     string       `json:"content"`
	To          []string     `json:"to"`
	Attachments []Attachment `json:"attachments,omitempty"`
}

// Attachment is one in-memory file attached to a message.
type Attachment struct {
	Filename string `json:"filename"`
	Content  []byte `json:"content"`
}
