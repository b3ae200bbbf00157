package openai

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/leofalp/oaikit/core/catalog"
)

// TestEncode_WireStrings verifies symbolic fields are encoded as the strings
// the endpoints expect.
func TestEncode_WireStrings(t *testing.T) {
	tests := []struct {
		name string
		req  Request
		want string
	}{
		{
			name: "text",
			req:  NewTextRequest("Say hi", catalog.GPT3),
			want: `{"model":"text-davinci-003","prompt":"Say hi","n":1,"max_tokens":100,"temperature":0.8}`,
		},
		{
			name: "chat",
			req:  NewChatRequest(catalog.GPT4, SystemMessage("be brief"), UserMessage("hi")),
			want: `{"model":"gpt-4","messages":[{"role":"system","content":"be brief"},{"role":"user","content":"hi"}],"n":1,"temperature":0.8,"max_tokens":100}`,
		},
		{
			name: "image",
			req:  NewImageRequest("a cat", catalog.SizeSmall),
			want: `{"prompt":"a cat","size":"256x256","n":1}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, err := tt.req.Encode()
			if err != nil {
				t.Fatalf("Encode() error = %v", err)
			}
			if string(body) != tt.want {
				t.Errorf("Encode() = %s\nwant       %s", body, tt.want)
			}
		})
	}
}

// TestEncode_ExtendedTextParameters verifies optional parameters appear only
// when set.
func TestEncode_ExtendedTextParameters(t *testing.T) {
	req := NewTextRequest("p", catalog.GPT3)
	zero := 0
	req.Logprobs = &zero
	req.Stop = []string{"\n"}
	req.User = "u-1"

	body, err := req.Encode()
	if err != nil {
		t.Fatal(err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(body, &decoded); err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"logprobs", "stop", "user"} {
		if _, ok := decoded[key]; !ok {
			t.Errorf("%s missing from %s", key, body)
		}
	}
	for _, key := range []string{"suffix", "top_p", "echo", "best_of", "logit_bias"} {
		if _, ok := decoded[key]; ok {
			t.Errorf("%s should be omitted from %s", key, body)
		}
	}
}

// TestValidate_UnknownKeys verifies every symbolic field is checked.
func TestValidate_UnknownKeys(t *testing.T) {
	tests := map[string]Request{
		"text model": NewTextRequest("p", catalog.TextModel(7)),
		"chat model": NewChatRequest(catalog.ChatModel(0), UserMessage("hi")),
		"chat role":  NewChatRequest(catalog.GPT4, UserMessage("hi"), Message{Role: catalog.Role(2), Content: "x"}),
		"image size": NewImageRequest("p", catalog.ImageSize(catalog.OrdinalBase+50)),
	}
	for name, req := range tests {
		t.Run(name, func(t *testing.T) {
			if err := req.Validate(); !errors.Is(err, catalog.ErrUnknownModelKey) {
				t.Errorf("Validate() error = %v, want ErrUnknownModelKey", err)
			}
			if _, err := req.Encode(); !errors.Is(err, catalog.ErrUnknownModelKey) {
				t.Errorf("Encode() error = %v, want ErrUnknownModelKey", err)
			}
		})
	}

	err := NewChatRequest(catalog.GPT4, UserMessage("hi"), Message{Role: catalog.Role(2)}).Validate()
	if err == nil || !strings.Contains(err.Error(), "message 1") {
		t.Errorf("role error should name the message index, got %v", err)
	}
}

func TestRequestURLs(t *testing.T) {
	if got := NewTextRequest("", DefaultTextModel).URL(); got != EndpointCompletions {
		t.Errorf("text URL = %s", got)
	}
	if got := NewChatRequest(DefaultChatModel).URL(); got != EndpointChatCompletions {
		t.Errorf("chat URL = %s", got)
	}
	if got := NewImageRequest("", DefaultImageSize).URL(); got != EndpointImageGenerations {
		t.Errorf("image URL = %s", got)
	}
	for _, req := range []Request{NewTextRequest("", DefaultTextModel), NewChatRequest(DefaultChatModel), NewImageRequest("", DefaultImageSize)} {
		if req.Family().URL() != req.URL() {
			t.Errorf("%s: Family().URL() = %s, URL() = %s", req.Family(), req.Family().URL(), req.URL())
		}
	}
}

func TestFamily(t *testing.T) {
	for _, name := range []string{"text", "chat", "image"} {
		f, err := ParseFamily(name)
		if err != nil {
			t.Fatalf("ParseFamily(%q) error = %v", name, err)
		}
		if f.String() != name {
			t.Errorf("String() = %q, want %q", f.String(), name)
		}
	}
	if _, err := ParseFamily("edit"); err == nil {
		t.Error("ParseFamily(edit) should fail")
	}
	if Family(9).URL() != "" {
		t.Error("unknown family should have no URL")
	}
	if familyLabel("http://127.0.0.1/x") != "other" || familyLabel(EndpointChatCompletions) != "chat" {
		t.Error("familyLabel() mismatch")
	}
}

func TestResult(t *testing.T) {
	tests := map[Result]string{
		Pending:             "pending",
		Success:             "success",
		ConnectionError:     "connection_error",
		ProtocolError:       "protocol_error",
		DataProcessingError: "data_processing_error",
	}
	for result, want := range tests {
		if result.String() != want {
			t.Errorf("String() = %q, want %q", result.String(), want)
		}
		var parsed Result
		if err := parsed.UnmarshalText([]byte(want)); err != nil || parsed != result {
			t.Errorf("UnmarshalText(%q) = %v, %v", want, parsed, err)
		}
	}
	if Result(42).String() != "result(42)" {
		t.Errorf("unknown result = %q", Result(42).String())
	}
}
