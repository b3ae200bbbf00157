package openai

import (
	"encoding/json"
	"fmt"

	"github.com/leofalp/oaikit/core/catalog"
)

// Request defaults.
const (
	DefaultN           = 1
	DefaultMaxTokens   = 100
	DefaultTemperature = float32(0.8)
)

// Defaults for the symbolic fields.
const (
	DefaultTextModel = catalog.GPT3
	DefaultChatModel = catalog.GPT4
	DefaultImageSize = catalog.SizeSmall
)

// Request is implemented by the three request families.
type Request interface {
	Family() Family
	URL() string
	Validate() error
	Encode() ([]byte, error)
}

var (
	_ Request = (*TextRequest)(nil)
	_ Request = (*ChatRequest)(nil)
	_ Request = (*ImageRequest)(nil)
)

// TextRequest is the body of a text completion.
type TextRequest struct {
	Model       catalog.TextModel `json:"model"`
	Prompt      string            `json:"prompt"`
	N           int               `json:"n"`
	MaxTokens   int               `json:"max_tokens"`
	Temperature float32           `json:"temperature"`

	Suffix           string         `json:"suffix,omitempty"`
	TopP             float32        `json:"top_p,omitempty"`
	Logprobs         *int           `json:"logprobs,omitempty"`
	Echo             bool           `json:"echo,omitempty"`
	Stop             []string       `json:"stop,omitempty"`
	PresencePenalty  float32        `json:"presence_penalty,omitempty"`
	FrequencyPenalty float32        `json:"frequency_penalty,omitempty"`
	BestOf           int            `json:"best_of,omitempty"`
	LogitBias        map[string]int `json:"logit_bias,omitempty"`
	User             string         `json:"user,omitempty"`
}

// NewTextRequest returns a completion request with the default parameters.
func NewTextRequest(prompt string, model catalog.TextModel) *TextRequest {
	return &TextRequest{
		Model:       model,
		Prompt:      prompt,
		N:           DefaultN,
		MaxTokens:   DefaultMaxTokens,
		Temperature: DefaultTemperature,
	}
}

// Family returns FamilyText.
func (r *TextRequest) Family() Family { return FamilyText }

// URL returns the endpoint the request is posted to.
func (r *TextRequest) URL() string { return EndpointCompletions }

// Validate checks that the model resolves to a wire string.
func (r *TextRequest) Validate() error {
	_, err := catalog.WireString(r.Model)
	return err
}

// Encode validates the request and returns its JSON body.
func (r *TextRequest) Encode() ([]byte, error) {
	return encode(r)
}

// Message is one chat turn.
type Message struct {
	Role    catalog.Role `json:"role"`
	Content string       `json:"content"`
}

// UserMessage returns a message with the user role.
func UserMessage(content string) Message {
	return Message{Role: catalog.RoleUser, Content: content}
}

// SystemMessage returns a message with the system role.
func SystemMessage(content string) Message {
	return Message{Role: catalog.RoleSystem, Content: content}
}

// AssistantMessage returns a message with the assistant role.
func AssistantMessage(content string) Message {
	return Message{Role: catalog.RoleAssistant, Content: content}
}

// ChatRequest is the body of a chat completion.
type ChatRequest struct {
	Model       catalog.ChatModel `json:"model"`
	Messages    []Message         `json:"messages"`
	N           int               `json:"n"`
	Temperature float32           `json:"temperature"`
	MaxTokens   int               `json:"max_tokens"`
}

// NewChatRequest returns a chat request with the default parameters.
func NewChatRequest(model catalog.ChatModel, messages ...Message) *ChatRequest {
	return &ChatRequest{
		Model:       model,
		Messages:    messages,
		N:           DefaultN,
		Temperature: DefaultTemperature,
		MaxTokens:   DefaultMaxTokens,
	}
}

// Family returns FamilyChat.
func (r *ChatRequest) Family() Family { return FamilyChat }

// URL returns the endpoint the request is posted to.
func (r *ChatRequest) URL() string { return EndpointChatCompletions }

// Validate checks the model and the role of every message.
func (r *ChatRequest) Validate() error {
	if _, err := catalog.WireString(r.Model); err != nil {
		return err
	}
	for i, m := range r.Messages {
		if _, err := catalog.WireString(m.Role); err != nil {
			return fmt.Errorf("message %d: %w", i, err)
		}
	}
	return nil
}

// Encode validates the request and returns its JSON body.
func (r *ChatRequest) Encode() ([]byte, error) {
	return encode(r)
}

// ImageRequest is the body of an image generation.
type ImageRequest struct {
	Prompt string            `json:"prompt"`
	Size   catalog.ImageSize `json:"size"`
	N      int               `json:"n"`
}

// NewImageRequest returns an image request for one image.
func NewImageRequest(prompt string, size catalog.ImageSize) *ImageRequest {
	return &ImageRequest{Prompt: prompt, Size: size, N: DefaultN}
}

// Family returns FamilyImage.
func (r *ImageRequest) Family() Family { return FamilyImage }

// URL returns the endpoint the request is posted to.
func (r *ImageRequest) URL() string { return EndpointImageGenerations }

// Validate checks that the size resolves to a wire string.
func (r *ImageRequest) Validate() error {
	_, err := catalog.WireString(r.Size)
	return err
}

// Encode validates the request and returns its JSON body.
func (r *ImageRequest) Encode() ([]byte, error) {
	return encode(r)
}

func encode(r Request) ([]byte, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	body, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("encoding %s request: %w", r.Family(), err)
	}
	return body, nil
}
