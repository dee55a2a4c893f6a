// Package telegram is a minimal Telegram Bot API client covering the calls the
// service needs: webhook registration and sending messages.
package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Bot is the Telegram Bot API client.
type Bot struct {
	apiURL     string
	httpClient *http.Client
}

// NewBot creates a Bot client for the given bot token.
func NewBot(token string) *Bot {
	return &Bot{
		apiURL:     "https://api.telegram.org/bot" + token,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// SetAPIURL overrides the API base URL. Used by tests.
func (b *Bot) SetAPIURL(url string) {
	b.apiURL = url
}

// SetWebhook registers the webhook URL with Telegram.
func (b *Bot) SetWebhook(ctx context.Context, webhookURL string) error {
	var resp apiResponse
	if err := b.post(ctx, "setWebhook", map[string]string{"url": webhookURL}, &resp); err != nil {
		return fmt.Errorf("setting webhook: %w", err)
	}
	if !resp.OK {
		return fmt.Errorf("telegram setWebhook rejected: %s", resp.Description)
	}
	return nil
}

// SendMessage sends a plain text message to a chat.
func (b *Bot) SendMessage(ctx context.Context, chatID int64, text string) error {
	return b.SendMessageWithMode(ctx, chatID, text, "")
}

// SendMessageWithMode sends a message with an optional parse mode such as
// "Markdown".
func (b *Bot) SendMessageWithMode(ctx context.Context, chatID int64, text, parseMode string) error {
	var resp apiResponse
	payload := sendMessageRequest{ChatID: chatID, Text: text, ParseMode: parseMode}
	if err := b.post(ctx, "sendMessage", payload, &resp); err != nil {
		return fmt.Errorf("sending message: %w", err)
	}
	if !resp.OK {
		return fmt.Errorf("telegram sendMessage rejected: %s", resp.Description)
	}
	return nil
}

func (b *Bot) post(ctx context.Context, method string, payload any, out *apiResponse) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshaling payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.apiURL+"/"+method, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := b.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}
