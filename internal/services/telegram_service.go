package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/example/cleandrop/internal/session"
)

const defaultTelegramAPI = "https://api.telegram.org"

// TelegramService forwards storefront notices to a Telegram chat.
type TelegramService struct {
	botToken    string
	adminChatID string
	apiBaseURL  string
	client      *http.Client
}

// NewTelegramService returns a client for the given bot and admin chat.
func NewTelegramService(botToken, adminChatID string) *TelegramService {
	return &TelegramService{
		botToken:    botToken,
		adminChatID: adminChatID,
		apiBaseURL:  defaultTelegramAPI,
		client:      &http.Client{Timeout: 10 * time.Second},
	}
}

// WithBaseURL points the service at another Bot API host.
func (s *TelegramService) WithBaseURL(baseURL string) *TelegramService {
	s.apiBaseURL = strings.TrimRight(baseURL, "/")
	return s
}

// Enabled reports whether both the bot token and the admin chat are set.
func (s *TelegramService) Enabled() bool {
	return s.botToken != "" && s.adminChatID != ""
}

type sendMessageRequest struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

type botResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description"`
}

// SendMessage posts text to chatID using HTML parse mode. A missing bot token
// is not an error; the message is dropped.
func (s *TelegramService) SendMessage(ctx context.Context, chatID, text string) error {
	if s.botToken == "" {
		log.Println("[Telegram] bot token not configured, message dropped")
		return nil
	}

	payload, err := json.Marshal(sendMessageRequest{ChatID: chatID, Text: text, ParseMode: "HTML"})
	if err != nil {
		return fmt.Errorf("encode message: %w", err)
	}

	endpoint := fmt.Sprintf("%s/bot%s/sendMessage", s.apiBaseURL, s.botToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("send message: %w", err)
	}
	defer resp.Body.Close()

	var result botResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil && resp.StatusCode == http.StatusOK {
		return fmt.Errorf("decode bot response: %w", err)
	}
	if resp.StatusCode != http.StatusOK || !result.OK {
		return fmt.Errorf("bot api status %d: %s", resp.StatusCode, result.Description)
	}
	return nil
}

// SendToAdmin sends text to the configured admin chat.
func (s *TelegramService) SendToAdmin(ctx context.Context, text string) error {
	if s.adminChatID == "" {
		log.Println("[Telegram] admin chat not configured, message dropped")
		return nil
	}
	return s.SendMessage(ctx, s.adminChatID, text)
}

// FormatNotice renders a session notice as Telegram HTML.
func FormatNotice(n session.Notice) string {
	icon := "🔔"
	if n.Variant == session.VariantDestructive {
		icon = "⚠️"
	}
	return fmt.Sprintf("%s <b>%s</b>\n%s", icon, html.EscapeString(n.Title), html.EscapeString(n.Description))
}

// Notify implements session.Notifier. Delivery happens in the background so
// session transitions never wait on Telegram.
func (s *TelegramService) Notify(n session.Notice) {
	session.LogNotifier{}.Notify(n)
	if !s.Enabled() {
		return
	}

	text := FormatNotice(n)
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.client.Timeout)
		defer cancel()
		if err := s.SendToAdmin(ctx, text); err != nil {
			log.Printf("[Telegram] notice %q not delivered: %v", n.Title, err)
		}
	}()
}
