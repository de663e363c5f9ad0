package valueobjects

import "fmt"

// MessageSender identifies who authored a conversation entry.
type MessageSender string

const (
	SenderClient MessageSender = "client"
	SenderAdmin  MessageSender = "admin"
	SenderAI     MessageSender = "ai"
	SenderSystem MessageSender = "system"
)

var validSenders = map[MessageSender]bool{
	SenderClient: true,
	SenderAdmin:  true,
	SenderAI:     true,
	SenderSystem: true,
}

func (s MessageSender) String() string {
	return string(s)
}

func (s MessageSender) IsValid() bool {
	return validSenders[s]
}

func (s MessageSender) IsClient() bool {
	return s == SenderClient
}

func (s MessageSender) IsAdmin() bool {
	return s == SenderAdmin
}

func (s MessageSender) IsAI() bool {
	return s == SenderAI
}

func (s MessageSender) IsSystem() bool {
	return s == SenderSystem
}

func NewMessageSender(s string) (MessageSender, error) {
	ms := MessageSender(s)
	if !ms.IsValid() {
		return "", fmt.Errorf("invalid message sender: %s", s)
	}
	return ms, nil
}

// ViewerRole is the audience a conversation is rendered for.
type ViewerRole string

const (
	ViewerClient ViewerRole = "client"
	ViewerAdmin  ViewerRole = "admin"
)

func (r ViewerRole) String() string {
	return string(r)
}

func (r ViewerRole) IsValid() bool {
	return r == ViewerClient || r == ViewerAdmin
}

func (r ViewerRole) IsAdmin() bool {
	return r == ViewerAdmin
}

func NewViewerRole(s string) (ViewerRole, error) {
	r := ViewerRole(s)
	if !r.IsValid() {
		return "", fmt.Errorf("invalid viewer role: %s", s)
	}
	return r, nil
}
