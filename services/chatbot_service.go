package services

import (
	"encoding/json"
	"fmt"
	"strings"
)

// chatHistoryLimit caps the rolling conversation kept in the session cookie.
const chatHistoryLimit = 20

type ChatbotService struct {
	groq *GroqService
}

func NewChatbotService(groq *GroqService) *ChatbotService {
	return &ChatbotService{groq: groq}
}

// Chat sends one user message with the rolling history and the user's
// current health context, returning the reply and the updated history.
func (s *ChatbotService) Chat(userID uint, history []ChatMessage, message string) (string, []ChatMessage, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return "", history, fmt.Errorf("message is required")
	}

	messages := make([]ChatMessage, 0, len(history)+2)
	messages = append(messages, ChatMessage{Role: "system", Content: buildChatContext(userID)})
	messages = append(messages, history...)
	messages = append(messages, ChatMessage{Role: "user", Content: message})

	reply, err := s.groq.ChatCompletion(messages)
	if err != nil {
		return "", history, err
	}

	history = append(history,
		ChatMessage{Role: "user", Content: message},
		ChatMessage{Role: "assistant", Content: reply},
	)
	history = TrimChatHistory(history)
	return reply, history, nil
}

// TrimChatHistory keeps the most recent messages within the session limit.
func TrimChatHistory(history []ChatMessage) []ChatMessage {
	if len(history) > chatHistoryLimit {
		history = history[len(history)-chatHistoryLimit:]
	}
	return history
}

func buildChatContext(userID uint) string {
	var sb strings.Builder
	sb.WriteString("You are a friendly health assistant for a personal health tracking app. ")
	sb.WriteString("Answer questions about nutrition, exercise, sleep and general wellness. ")
	sb.WriteString("Never give medical diagnoses; suggest seeing a doctor for anything serious.\n")

	if hd, err := LatestHealthData(userID); err == nil && hd != nil {
		fmt.Fprintf(&sb, "\nThe user's latest recorded metrics (%s):", hd.Date.Format("2006-01-02"))
		if hd.Weight > 0 {
			fmt.Fprintf(&sb, " weight %.1fkg,", hd.Weight)
		}
		if hd.Steps > 0 {
			fmt.Fprintf(&sb, " %d steps,", hd.Steps)
		}
		if hd.SleepHours > 0 {
			fmt.Fprintf(&sb, " %.1fh sleep,", hd.SleepHours)
		}
		if hd.CaloriesConsumed > 0 {
			fmt.Fprintf(&sb, " %d kcal consumed,", hd.CaloriesConsumed)
		}
		sb.WriteString("\n")
	}

	if active, _, err := ListGoals(userID); err == nil && len(active) > 0 {
		sb.WriteString("Active goals:")
		for _, g := range active {
			fmt.Fprintf(&sb, " %s (%s, %.0f/%.0f);", g.Name, g.GoalType, g.CurrentValue, g.TargetValue)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// EncodeChatHistory / DecodeChatHistory serialize the conversation for
// session storage. A corrupt value just resets the conversation.
func EncodeChatHistory(history []ChatMessage) string {
	b, err := json.Marshal(history)
	if err != nil {
		return "[]"
	}
	return string(b)
}

func DecodeChatHistory(raw string) []ChatMessage {
	if raw == "" {
		return nil
	}
	var history []ChatMessage
	if err := json.Unmarshal([]byte(raw), &history); err != nil {
		return nil
	}
	return history
}
