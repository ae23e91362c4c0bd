package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger интерфейс логгера, используемый клиентом
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для отправки уведомлений через Telegram Bot API
type Client struct {
	apiBase    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр Telegram-клиента
func NewClient(timeout time.Duration, log Logger) *Client {
	return &Client{
		apiBase: "https://api.telegram.org",
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// SendMessage отправляет текстовое сообщение в чат через Bot API
func (c *Client) SendMessage(ctx context.Context, token, chatID, text string) error {
	url := fmt.Sprintf("%s/bot%s/sendMessage", c.apiBase, token)

	payload, err := json.Marshal(sendMessageRequest{
		ChatID:    chatID,
		Text:      text,
		ParseMode: "HTML",
	})
	if err != nil {
		return fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("Telegram API unreachable for chat_id=%s: %v", chatID, err)
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.log.Error("Telegram API returned status %d for chat_id=%s", resp.StatusCode, chatID)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var apiResp apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}
	if !apiResp.OK {
		c.log.Error("Telegram API rejected message for chat_id=%s: %d %s", chatID, apiResp.ErrorCode, apiResp.Description)
		return fmt.Errorf("%w: api error %d: %s", ErrInvalidResponse, apiResp.ErrorCode, apiResp.Description)
	}

	return nil
}
