package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"chatcore/internal/model"
	"chatcore/internal/utils"
)

// Answerer is the remote question-answering service. Its single endpoint
// is polymorphic: the reply shape depends on how the service classified
// the question.
type Answerer interface {
	Ask(ctx context.Context, req *model.AutoChatRequest) (*model.AutoChatResponse, error)
}

// AutoChatClient calls the answering service over HTTP.
type AutoChatClient struct {
	httpClient *http.Client
	baseURL    string
}

// NewAutoChatClient creates a client for the answering service.
func NewAutoChatClient(baseURL string, timeout time.Duration) *AutoChatClient {
	return &AutoChatClient{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

// Ask sends one question and decodes the reply. Any transport failure or
// non-2xx status is returned as an error; the caller turns it into the
// locale-specific failure message.
func (c *AutoChatClient) Ask(ctx context.Context, reqBody *model.AutoChatRequest) (*model.AutoChatResponse, error) {
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("encode chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/auto", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, utils.Truncate(strings.TrimSpace(string(body)), 200))
	}

	var out model.AutoChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode chat response: %w", err)
	}
	return &out, nil
}
