// Package gemini talks to the Google Generative Language REST API. Only the
// streaming generateContent surface is implemented.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/clique360/backend/internal/entity"
	"github.com/clique360/backend/pkg/config"
	"github.com/clique360/backend/pkg/transport"
)

const apiKeyHeader = "x-goog-api-key"

type Client struct {
	cfg config.Gemini
	c   *http.Client
}

// NewClient builds the provider client. No overall timeout is set: a stream
// stays open for as long as the model generates, cancellation comes from the
// request context.
func NewClient(cfg config.Gemini) *Client {
	return &Client{
		cfg: cfg,
		c: &http.Client{
			Transport: transport.NewAPIKeyRoundTripper(http.DefaultTransport, apiKeyHeader, cfg.APIKey),
		},
	}
}

// Content is one conversation turn in the provider wire format.
type Content struct {
	Role  string `json:"role,omitempty"`
	Parts []Part `json:"parts"`
}

type Part struct {
	Text         string        `json:"text,omitempty"`
	FunctionCall *functionCall `json:"functionCall,omitempty"`
}

type functionCall struct {
	Name string          `json:"name"`
	Args json.RawMessage `json:"args,omitempty"`
}

type FunctionDeclaration struct {
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Parameters  *Schema `json:"parameters,omitempty"`
}

// Schema is the OpenAPI-style subset the API accepts for tool parameters.
type Schema struct {
	Type        string             `json:"type"`
	Description string             `json:"description,omitempty"`
	Enum        []string           `json:"enum,omitempty"`
	Properties  map[string]*Schema `json:"properties,omitempty"`
	Required    []string           `json:"required,omitempty"`
}

type tool struct {
	FunctionDeclarations []FunctionDeclaration `json:"functionDeclarations"`
}

type generateRequest struct {
	SystemInstruction *Content  `json:"systemInstruction,omitempty"`
	Contents          []Content `json:"contents"`
	Tools             []tool    `json:"tools,omitempty"`
}

// StreamGenerateContent opens an SSE stream over the conversation. The caller
// owns the returned stream and must Close it.
func (c *Client) StreamGenerateContent(
	ctx context.Context,
	system string,
	contents []Content,
	declarations []FunctionDeclaration,
) (entity.ChatStream, error) {
	reqBody := generateRequest{
		Contents: contents,
	}

	if system != "" {
		reqBody.SystemInstruction = &Content{Parts: []Part{{Text: system}}}
	}

	if len(declarations) > 0 {
		reqBody.Tools = []tool{{FunctionDeclarations: declarations}}
	}

	b, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	u := fmt.Sprintf(
		"%s/v1beta/models/%s:streamGenerateContent?alt=sse",
		c.cfg.BaseURL,
		c.cfg.Model,
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.c.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		defer resp.Body.Close()

		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

		return nil, fmt.Errorf("%w: status %d: %s", entity.ErrProvider, resp.StatusCode, body)
	}

	return newStream(resp.Body), nil
}
