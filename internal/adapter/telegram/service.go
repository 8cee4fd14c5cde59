package telegram

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"tradedeck/internal/domain"
)

type NotificationService struct {
	botToken   string
	chatID     string
	enabled    bool
	location   *time.Location
	httpClient *http.Client
}

type telegramMessage struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

func NewNotificationService(botToken, chatID string) *NotificationService {
	enabled := botToken != "" && chatID != ""

	// Load timezone from environment or default to Asia/Kolkata (NSE hours)
	tz := os.Getenv("TZ")
	if tz == "" {
		tz = "Asia/Kolkata"
	}

	location, err := time.LoadLocation(tz)
	if err != nil {
		// Fallback to UTC if timezone loading fails
		location = time.UTC
	}

	return &NotificationService{
		botToken: botToken,
		chatID:   chatID,
		enabled:  enabled,
		location: location,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// NotifyOrder pushes the outcome of an order submission to Telegram. A nil
// result means the order never reached the backend.
func (s *NotificationService) NotifyOrder(ticket domain.OrderTicket, result *domain.OrderResult) error {
	if !s.enabled {
		return nil // Silently skip if Telegram is not configured
	}

	sideEmoji := "🟢"
	if ticket.Side == domain.SideSell {
		sideEmoji = "🔴"
	}

	var message string
	switch {
	case result.Success():
		message = fmt.Sprintf(
			"✅ *ORDER PLACED*\n\n"+
				"%s *%s %s*\n"+
				"━━━━━━━━━━━━━━━━━\n"+
				"🧾 Order ID: `%s`\n"+
				"🕒 Time: `%s`",
			sideEmoji,
			ticket.Side,
			ticket.Symbol,
			result.OrderID,
			time.Now().In(s.location).Format("2006-01-02 15:04:05"),
		)
	case result != nil:
		message = fmt.Sprintf(
			"❌ *ORDER REJECTED*\n\n"+
				"%s *%s %s*\n"+
				"━━━━━━━━━━━━━━━━━\n"+
				"💬 Reason: %s\n"+
				"🕒 Time: `%s`",
			sideEmoji,
			ticket.Side,
			ticket.Symbol,
			result.Message,
			time.Now().In(s.location).Format("2006-01-02 15:04:05"),
		)
	default:
		message = fmt.Sprintf(
			"⚠️ *ORDER FAILED*\n\n"+
				"%s *%s %s*\n"+
				"━━━━━━━━━━━━━━━━━\n"+
				"💬 Order could not be submitted to the backend\n"+
				"🕒 Time: `%s`",
			sideEmoji,
			ticket.Side,
			ticket.Symbol,
			time.Now().In(s.location).Format("2006-01-02 15:04:05"),
		)
	}

	return s.sendMessage(message)
}

// sendMessage sends a message to Telegram using the Bot API
func (s *NotificationService) sendMessage(text string) error {
	if !s.enabled {
		return nil
	}

	url := fmt.Sprintf("https://api.telegram.org/bot%s/sendMessage", s.botToken)

	payload := telegramMessage{
		ChatID:    s.chatID,
		Text:      text,
		ParseMode: "Markdown",
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal telegram message: %w", err)
	}

	resp, err := s.httpClient.Post(url, "application/json", bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to send telegram message: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("telegram API error (status %d): %s", resp.StatusCode, string(body))
	}

	return nil
}
