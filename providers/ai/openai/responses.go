package openai

import (
	"encoding/json"
	"strings"

	"github.com/leofalp/oaikit/core/catalog"
)

// Response is implemented by every type Post can return.
type Response interface {
	// OK reports whether the call succeeded.
	OK() bool
	setStatus(Result)
	normalize()
}

// accounted is implemented by responses that carry an id and token usage.
type accounted interface {
	accounting() (id string, totalTokens int)
}

// Usage reports token accounting.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// Choice is one text completion.
type Choice struct {
	Text         string          `json:"text"`
	Index        int             `json:"index"`
	Logprobs     json.RawMessage `json:"logprobs,omitempty"`
	FinishReason string          `json:"finish_reason"`
}

// TextResponse is the answer to a TextRequest.
type TextResponse struct {
	Status Result `json:"-"`

	ID      string   `json:"id"`
	Object  string   `json:"object"`
	Created int64    `json:"created"`
	Model   string   `json:"model"`
	Choices []Choice `json:"choices"`
	Usage   Usage    `json:"usage"`
}

// Text returns the text of the first choice, or "".
func (r *TextResponse) Text() string {
	if len(r.Choices) == 0 {
		return ""
	}
	return r.Choices[0].Text
}

// OK reports whether the TextResponse came from a successful call.
func (r *TextResponse) OK() bool { return r.Status == Success }

func (r *TextResponse) setStatus(status Result)   { r.Status = status }
func (r *TextResponse) accounting() (string, int) { return r.ID, r.Usage.TotalTokens }

// normalize trims the whitespace the endpoint leaves around completions.
func (r *TextResponse) normalize() {
	for i := range r.Choices {
		r.Choices[i].Text = strings.TrimSpace(r.Choices[i].Text)
	}
}

// ReplyMessage is a message returned by the chat endpoint. Its role is kept
// as sent, so roles outside the catalog do not fail the decode.
type ReplyMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// RoleKey returns the catalog role of the message, or an error matching
// catalog.ErrUnknownModelKey for any other role.
func (m ReplyMessage) RoleKey() (catalog.Role, error) {
	var role catalog.Role
	if err := role.UnmarshalText([]byte(m.Role)); err != nil {
		return 0, err
	}
	return role, nil
}

// MessageChoice is one chat completion.
type MessageChoice struct {
	Message      ReplyMessage    `json:"message"`
	Index        int             `json:"index"`
	Logprobs     json.RawMessage `json:"logprobs,omitempty"`
	FinishReason string          `json:"finish_reason"`
}

// ChatResponse is the answer to a ChatRequest.
type ChatResponse struct {
	Status Result `json:"-"`

	ID      string          `json:"id"`
	Object  string          `json:"object"`
	Created int64           `json:"created"`
	Model   string          `json:"model"`
	Choices []MessageChoice `json:"choices"`
	Usage   Usage           `json:"usage"`
}

// Text returns the content of the first choice, or "".
func (r *ChatResponse) Text() string {
	return r.Message().Content
}

// Message returns the message of the first choice, or an empty user message.
func (r *ChatResponse) Message() ReplyMessage {
	if len(r.Choices) == 0 {
		return ReplyMessage{Role: "user"}
	}
	return r.Choices[0].Message
}

// OK reports whether the ChatResponse came from a successful call.
func (r *ChatResponse) OK() bool { return r.Status == Success }

func (r *ChatResponse) setStatus(status Result)   { r.Status = status }
func (r *ChatResponse) normalize()                {}
func (r *ChatResponse) accounting() (string, int) { return r.ID, r.Usage.TotalTokens }

// ImageSlot is one generated image. URL comes from the endpoint; the other
// fields are filled by the image fan-out.
type ImageSlot struct {
	URL      string `json:"url"`
	Data     []byte `json:"-"`
	MimeType string `json:"-"`
	Path     string `json:"-"`
}

// ImageResponse is the answer to an ImageRequest.
type ImageResponse struct {
	Status Result `json:"-"`

	Created int64       `json:"created"`
	Data    []ImageSlot `json:"data"`
}

// First returns the first slot, or a zero slot.
func (r *ImageResponse) First() ImageSlot {
	if len(r.Data) == 0 {
		return ImageSlot{}
	}
	return r.Data[0]
}

// URLs lists the slot URLs in slot order.
func (r *ImageResponse) URLs() []string {
	urls := make([]string, len(r.Data))
	for i, slot := range r.Data {
		urls[i] = slot.URL
	}
	return urls
}

// OK reports whether the ImageResponse came from a successful call.
func (r *ImageResponse) OK() bool { return r.Status == Success }

func (r *ImageResponse) setStatus(status Result) { r.Status = status }
func (r *ImageResponse) normalize()              {}

// RawResponse keeps the whole success document undecoded. It answers bodies
// sent with Client.SendRaw.
type RawResponse struct {
	Status Result          `json:"-"`
	Body   json.RawMessage `json:"-"`
}

// UnmarshalJSON stores the complete document in Body.
func (r *RawResponse) UnmarshalJSON(data []byte) error {
	r.Body = append(json.RawMessage(nil), data...)
	return nil
}

// OK reports whether the RawResponse came from a successful call.
func (r *RawResponse) OK() bool { return r.Status == Success }

func (r *RawResponse) setStatus(status Result) { r.Status = status }
func (r *RawResponse) normalize()              {}
