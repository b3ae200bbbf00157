package openai

import "fmt"

// Fixed endpoint URLs. Edits and the image edit and variation endpoints are
// listed for completeness; no request type targets them.
const (
	EndpointCompletions      = "https://api.openai.com/v1/completions"
	EndpointChatCompletions  = "https://api.openai.com/v1/chat/completions"
	EndpointEdits            = "https://api.openai.com/v1/edits"
	EndpointImageGenerations = "https://api.openai.com/v1/images/generations"
	EndpointImageEdits       = "https://api.openai.com/v1/images/edits"
	EndpointImageVariations  = "https://api.openai.com/v1/images/variations"
)

// Family is one of the request families the client can send.
type Family int

const (
	FamilyText Family = iota
	FamilyChat
	FamilyImage
)

var families = []struct {
	family Family
	name   string
	url    string
}{
	{FamilyText, "text", EndpointCompletions},
	{FamilyChat, "chat", EndpointChatCompletions},
	{FamilyImage, "image", EndpointImageGenerations},
}

// String returns "text", "chat" or "image".
func (f Family) String() string {
	for _, entry := range families {
		if entry.family == f {
			return entry.name
		}
	}
	return fmt.Sprintf("family(%d)", int(f))
}

// URL returns the endpoint of the family, or "" for an unknown family.
func (f Family) URL() string {
	for _, entry := range families {
		if entry.family == f {
			return entry.url
		}
	}
	return ""
}

// ParseFamily parses the String form of a family.
func ParseFamily(name string) (Family, error) {
	for _, entry := range families {
		if entry.name == name {
			return entry.family, nil
		}
	}
	return 0, fmt.Errorf("unknown request family %q", name)
}

// familyLabel names the family served by url for metrics and logs.
func familyLabel(url string) string {
	for _, entry := range families {
		if entry.url == url {
			return entry.name
		}
	}
	return "other"
}
