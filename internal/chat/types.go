package chat

import "enrollment-assistant/internal/conversation"

// ApologyMessage is appended as the assistant reply when the backend exchange fails.
const ApologyMessage = "Sorry, I encountered an error processing your request. Please try again."

// SendInput is one user message for a surface.
type SendInput struct {
	Surface conversation.Surface
	Message string
}

// Answer is what the response cache remembers for a context-free question.
type Answer struct {
	Response           string
	SuggestedQuestions []string
}

// SendOutput describes the completed exchange.
type SendOutput struct {
	UserMessage        conversation.Message
	Reply              conversation.Message
	SuggestedQuestions []string
	SessionID          string
	FromCache          bool
	// Failed is set when Reply is the apology rather than a backend answer.
	Failed bool
}
