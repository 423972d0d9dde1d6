// Package llm talks to an OpenAI/Ollama-compatible chat-completions
// endpoint. The wire format is the /v1/chat/completions JSON dialect:
// role-tagged messages, optional function tools, and tool_calls in the
// reply. Requests are never streamed.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"kubechat/pkg/logging"
)

const logSubsystem = "LLM"

// DefaultTimeout bounds one chat request unless configured otherwise.
const DefaultTimeout = 120 * time.Second

// Roles used in chat messages.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleTool      = "tool"
)

// Message is one entry of the conversation sent to the model.
type Message struct {
	Role       string     `json:"role"`
	Content    string     `json:"content,omitempty"`
	ToolCalls  []ToolCall `json:"tool_calls,omitempty"`
	ToolCallID string     `json:"tool_call_id,omitempty"`
}

// ToolCall is the model requesting a tool invocation.
type ToolCall struct {
	ID       string       `json:"id"`
	Type     string       `json:"type"`
	Function FunctionCall `json:"function"`
}

// FunctionCall names the tool and carries its arguments as a JSON string
// that still needs parsing.
type FunctionCall struct {
	Name      string `json:"name"`
	Arguments string `json:"arguments"`
}

// Tool is a function-calling tool offered to the model.
type Tool struct {
	Type     string       `json:"type"`
	Function ToolFunction `json:"function"`
}

// ToolFunction describes one callable function: its name, description, and
// JSON-schema parameters.
type ToolFunction struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	Parameters  map[string]interface{} `json:"parameters"`
}

// ChatResponse is the assistant's reply: text, tool call requests, or both.
type ChatResponse struct {
	Content   string
	ToolCalls []ToolCall
}

// chatRequest is the wire request body.
type chatRequest struct {
	Model    string    `json:"model"`
	Messages []Message `json:"messages"`
	Tools    []Tool    `json:"tools,omitempty"`
	Stream   bool      `json:"stream"`
}

// chatResponse is the wire response body.
type chatResponse struct {
	ID      string `json:"id"`
	Model   string `json:"model"`
	Choices []struct {
		Index        int     `json:"index"`
		Message      Message `json:"message"`
		FinishReason string  `json:"finish_reason"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    string `json:"code"`
	} `json:"error,omitempty"`
}

// Options configure a Client. Endpoint and Model are required.
type Options struct {
	Endpoint string        // base URL, e.g. "http://localhost:11434"
	Model    string        // model name requested on every call
	APIKey   string        // optional; sent as a bearer token when set
	Timeout  time.Duration // per-request, defaults to DefaultTimeout
}

// Client is a minimal chat-completions client. All connection parameters are
// fixed at construction; there is no mutable package-level state.
type Client struct {
	endpoint   string
	model      string
	apiKey     string
	httpClient *http.Client
}

// New creates a chat client for the given endpoint.
func New(opts Options) *Client {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		endpoint:   normalizeEndpoint(opts.Endpoint),
		model:      opts.Model,
		apiKey:     opts.APIKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// normalizeEndpoint strips trailing slashes and a trailing /v1 so both
// "http://host:11434" and "http://host:11434/v1" work as base URLs.
func normalizeEndpoint(endpoint string) string {
	endpoint = strings.TrimSuffix(endpoint, "/")
	endpoint = strings.TrimSuffix(endpoint, "/v1")
	return endpoint
}

// Endpoint returns the normalized base URL this client talks to.
func (c *Client) Endpoint() string { return c.endpoint }

// Model returns the model name requested on every call.
func (c *Client) Model() string { return c.model }

// Chat sends the conversation plus the available tools and returns the
// model's reply. Every failure mode (transport, HTTP status, protocol error,
// decode) surfaces as *ModelEndpointError.
func (c *Client) Chat(ctx context.Context, messages []Message, tools []Tool) (*ChatResponse, error) {
	reqBody := chatRequest{
		Model:    c.model,
		Messages: messages,
		Stream:   false,
	}
	if len(tools) > 0 {
		reqBody.Tools = tools
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, &ModelEndpointError{Endpoint: c.endpoint, cause: fmt.Errorf("failed to serialize request: %w", err)}
	}

	url := c.endpoint + "/v1/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, &ModelEndpointError{Endpoint: c.endpoint, cause: fmt.Errorf("failed to create request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	logging.Debug(logSubsystem, "POST %s (model=%s, %d messages, %d tools)", url, c.model, len(messages), len(tools))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &ModelEndpointError{Endpoint: c.endpoint, cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, &ModelEndpointError{
			Endpoint:   c.endpoint,
			StatusCode: resp.StatusCode,
			cause:      fmt.Errorf("%s", strings.TrimSpace(string(body))),
		}
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, &ModelEndpointError{Endpoint: c.endpoint, cause: fmt.Errorf("failed to parse response: %w", err)}
	}
	if parsed.Error != nil {
		return nil, &ModelEndpointError{Endpoint: c.endpoint, cause: fmt.Errorf("API error: %s", parsed.Error.Message)}
	}
	if len(parsed.Choices) == 0 {
		return nil, &ModelEndpointError{Endpoint: c.endpoint, cause: fmt.Errorf("response contained no choices")}
	}

	choice := parsed.Choices[0]
	logging.Debug(logSubsystem, "Model answered (finish_reason=%s, %d tool calls)", choice.FinishReason, len(choice.Message.ToolCalls))

	return &ChatResponse{
		Content:   choice.Message.Content,
		ToolCalls: choice.Message.ToolCalls,
	}, nil
}
