package telegrammessagesender

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

type telegramMessage struct {
	ChatID    int64  `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

// TelegramMessageSender delivers notification texts to a single fixed chat
// through the Bot API. Messages are HTML formatted.
type TelegramMessageSender struct {
	httpClient http.Client
	baseURL    url.URL
	token      string
	chatID     int64
}

func New(baseURL url.URL, token string, chatID int64, timeout time.Duration) *TelegramMessageSender {
	return &TelegramMessageSender{
		baseURL:    baseURL,
		token:      token,
		chatID:     chatID,
		httpClient: http.Client{Timeout: timeout},
	}
}

func (s *TelegramMessageSender) Send(ctx context.Context, text string) error {
	url := s.baseURL.JoinPath(fmt.Sprintf("bot%s", s.token), "sendMessage")
	var body bytes.Buffer
	encoder := json.NewEncoder(&body)
	err := encoder.Encode(telegramMessage{ChatID: s.chatID, Text: text, ParseMode: "HTML"})
	if err != nil {
		return err
	}
	request, err := http.NewRequestWithContext(ctx, http.MethodPost, url.String(), &body)
	if err != nil {
		return err
	}
	request.Header.Add("content-type", "application/json")
	resp, err := s.httpClient.Do(request)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return err
		}
		return fmt.Errorf("got unsuccessfull response from Telegram: %s", string(body))
	}
	return nil
}
