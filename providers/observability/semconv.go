package observability

// Attribute keys, span, event and metric names shared by every oaikit
// component.

// --- API Attributes ---

const (
	// AttrAPIFamily is the request family ("text", "chat", "image")
	AttrAPIFamily = "api.family"

	// AttrAPIModel is the wire model identifier (e.g. "gpt-4")
	AttrAPIModel = "api.model"

	// AttrAPIEndpoint is the endpoint URL
	AttrAPIEndpoint = "api.endpoint"

	// AttrAPIResult is the transport outcome ("success", "connection_error", ...)
	AttrAPIResult = "api.result"

	// AttrAPIResponseID is the id the API assigned to the response
	AttrAPIResponseID = "api.response.id"

	// AttrAPIChoices is the number of choices or image slots returned
	AttrAPIChoices = "api.choices"

	// AttrAPITokensTotal is the total token usage reported by the API
	AttrAPITokensTotal = "api.tokens.total" // #nosec G101 -- Not a credential
)

// --- Client Attributes ---

const (
	// AttrRequestID is the per-call id generated by the client
	AttrRequestID = "request.id"

	// AttrClientPrompt is the prompt, truncated
	AttrClientPrompt = "client.prompt"

	// AttrClientMessagesCount is the number of chat messages sent
	AttrClientMessagesCount = "client.messages_count"
)

// --- Image Fan-out Attributes ---

const (
	// AttrImageSlot is the index of an image slot
	AttrImageSlot = "image.slot"

	// AttrImageURL is the remote URL of an image slot
	AttrImageURL = "image.url"

	// AttrImageMIMEType is the detected MIME type of a downloaded image
	AttrImageMIMEType = "image.mime_type"

	// AttrImagePath is where a downloaded image was persisted
	AttrImagePath = "image.path"

	// AttrImageBytes is the size of a downloaded image
	AttrImageBytes = "image.bytes"
)

// --- HTTP Attributes ---

const (
	// AttrHTTPMethod is the HTTP method (GET, POST, etc.)
	AttrHTTPMethod = "http.method"

	// AttrHTTPStatusCode is the HTTP response status code
	AttrHTTPStatusCode = "http.status_code"

	// AttrHTTPURL is the full request URL
	AttrHTTPURL = "http.url"

	// AttrHTTPRequestBody is the bounded prefix of the request body
	AttrHTTPRequestBody = "http.request.body"

	// AttrHTTPResponseBody is the raw response body
	AttrHTTPResponseBody = "http.response.body"

	// AttrHTTPRequestBodySize is the request body size in bytes
	AttrHTTPRequestBodySize = "http.request.body.size"

	// AttrHTTPResponseBodySize is the response body size in bytes
	AttrHTTPResponseBodySize = "http.response.body.size"

	// AttrHTTPDuration is the round trip time
	AttrHTTPDuration = "http.request.duration"
)

// --- General Attributes ---

const (
	// AttrError is the error message
	AttrError = "error"

	// AttrDuration is the operation duration
	AttrDuration = "duration"

	// AttrStatus is the operation status
	AttrStatus = "status"

	// AttrStatusDescription is the status description
	AttrStatusDescription = "status_description"
)

// --- Span Names ---

const (
	// SpanClientRequest covers one facade call from validation to resolution
	SpanClientRequest = "client.request"

	// SpanAPIRequest covers the single POST of one call
	SpanAPIRequest = "api.request"

	// SpanImageFanout covers the download of every image slot
	SpanImageFanout = "image.fanout"
)

// --- Event Names ---

const (
	EventAPIRequestSent    = "api.request.sent"
	EventAPIResponseParsed = "api.response.parsed"
	EventImageFetched      = "image.fetched"
	EventImagePersisted    = "image.persisted"
	EventImagePersistError = "image.persist_error"
)

// --- Metric Names ---

const (
	// MetricAPIRequestCount counts POSTs by family and result
	MetricAPIRequestCount = "oaikit.api.request.count"

	// MetricAPIRequestDuration is the POST round trip in seconds
	MetricAPIRequestDuration = "oaikit.api.request.duration"

	// MetricImageFetchCount counts image downloads by outcome
	MetricImageFetchCount = "oaikit.image.fetch.count"

	// MetricImageBytes is the size distribution of downloaded images
	MetricImageBytes = "oaikit.image.bytes"
)
