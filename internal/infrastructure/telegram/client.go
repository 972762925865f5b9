package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Pavel771123/nataliya/internal/config"
	"github.com/Pavel771123/nataliya/internal/domain"
)

const (
	parseModeHTML = "HTML"

	defaultMessageTimeout  = 10 * time.Second
	defaultDocumentTimeout = 20 * time.Second
)

var ErrNotConfigured = errors.New("telegram bot token or chat id is not set")

// Client talks to the Bot API of a single bot posting into a single chat.
type Client struct {
	httpClient      *http.Client
	baseURL         string
	token           string
	chatID          string
	messageTimeout  time.Duration
	documentTimeout time.Duration
}

func NewClient(cfg config.Telegram) *Client {
	c := &Client{
		httpClient:      &http.Client{},
		baseURL:         strings.TrimRight(cfg.APIURL, "/"),
		token:           cfg.Token,
		chatID:          cfg.ChatID,
		messageTimeout:  cfg.MessageTimeout,
		documentTimeout: cfg.DocumentTimeout,
	}

	if c.messageTimeout <= 0 {
		c.messageTimeout = defaultMessageTimeout
	}
	if c.documentTimeout <= 0 {
		c.documentTimeout = defaultDocumentTimeout
	}

	return c
}

func (c *Client) Configured() bool {
	return c.token != "" && c.chatID != ""
}

// SendMessage posts HTML formatted text to the chat.
func (c *Client) SendMessage(ctx context.Context, text string) error {
	if !c.Configured() {
		return ErrNotConfigured
	}

	ctx, cancel := context.WithTimeout(ctx, c.messageTimeout)
	defer cancel()

	form := url.Values{
		"chat_id":    {c.chatID},
		"text":       {text},
		"parse_mode": {parseModeHTML},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint("sendMessage"), strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	return c.do(req)
}

// SendDocument uploads the file to the chat with an optional caption.
func (c *Client) SendDocument(ctx context.Context, file *domain.Attachment, caption string) error {
	if !c.Configured() {
		return ErrNotConfigured
	}

	ctx, cancel := context.WithTimeout(ctx, c.documentTimeout)
	defer cancel()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	if err := writeDocumentForm(writer, c.chatID, file, caption); err != nil {
		return fmt.Errorf("failed to build multipart form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint("sendDocument"), &body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	return c.do(req)
}

func writeDocumentForm(writer *multipart.Writer, chatID string, file *domain.Attachment, caption string) error {
	if err := writer.WriteField("chat_id", chatID); err != nil {
		return err
	}

	if caption != "" {
		if err := writer.WriteField("caption", caption); err != nil {
			return err
		}
		if err := writer.WriteField("parse_mode", parseModeHTML); err != nil {
			return err
		}
	}

	part, err := writer.CreateFormFile("document", file.Name)
	if err != nil {
		return err
	}

	if _, err := part.Write(file.Content); err != nil {
		return err
	}

	return writer.Close()
}

func (c *Client) endpoint(method string) string {
	return c.baseURL + "/bot" + c.token + "/" + method
}

type apiResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description"`
}

func (c *Client) do(req *http.Request) (err error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		// url.Error carries the request URL, which contains the token.
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			err = urlErr.Err
		}
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer func() {
		err = errors.Join(err, resp.Body.Close())
	}()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	var apiResp apiResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, 4096)).Decode(&apiResp); err == nil && apiResp.Description != "" {
		return fmt.Errorf("telegram api returned status %d: %s", resp.StatusCode, apiResp.Description)
	}

	return fmt.Errorf("telegram api returned status %d", resp.StatusCode)
}
