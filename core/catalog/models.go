package catalog

// TextModel selects a model of the completions endpoint.
type TextModel int

const (
	GPT3 TextModel = OrdinalBase + iota
	Ada
	AdaCodeSearchCode
	AdaCodeSearchText
	AdaSearchDocument
	AdaSearchQuery
	AdaSimilarity
	Ada20200503
	Babbage
	BabbageCodeSearchCode
	BabbageCodeSearchText
	BabbageSearchDocument
	BabbageSearchQuery
	BabbageSimilarity
	Babbage20200503
	CodeSearchAdaCode001
	CodeSearchAdaText001
	CodeSearchBabbageCode001
	CodeSearchBabbageText001
	Curie
	CurieInstructBeta
	CurieSearchDocument
	CurieSearchQuery
	CurieSimilarity
	Curie20200503
	Cushman20200503
	Davinci
	DavinciIf300
	DavinciInstructBeta
	DavinciInstructBeta200
	DavinciSearchDocument
	DavinciSearchQuery
	DavinciSimilarity
	Davinci20200503
	TextAda001
	TextAdaColon001
	TextBabbage001
	TextBabbageColon001
	TextCurie001
	TextCurieColon001
	TextDavinci001
	TextDavinci002
	TextDavinci003
	TextDavinciEdit001
	TextDavinciInsert001
	TextDavinciInsert002
	TextDavinciColon001
	TextEmbeddingAda002
	TextSearchAdaDoc001
	TextSearchAdaQuery001
	TextSearchBabbageDoc001
	TextSearchBabbageQuery001
	TextSearchCurieDoc001
	TextSearchCurieQuery001
	TextSearchDavinciDoc001
	TextSearchDavinciQuery001
	TextSimilarityAda001
	TextSimilarityBabbage001
	TextSimilarityCurie001
	TextSimilarityDavinci001
	GPT35TurboInstruct
	Babbage002
	Davinci002
)

// ChatGPT is an alias of GPT35TurboInstruct.
const ChatGPT = GPT35TurboInstruct

// ChatModel selects a model of the chat completions endpoint.
type ChatModel int

const (
	GPT35Turbo ChatModel = OrdinalBase + iota
	GPT35Turbo0301
	GPT4
	GPT40314
)

// TextEditModel selects a model of the edits endpoint.
type TextEditModel int

const (
	EditTextDavinci001 TextEditModel = OrdinalBase + iota
	EditCodeDavinci001
)

// AudioModel selects a transcription model.
type AudioModel int

const Whisper1 AudioModel = OrdinalBase

// ImageModel, ImageEditModel and ImageVariationModel are declared but carry
// no wire strings; they never resolve.
type (
	ImageModel          int
	ImageEditModel      int
	ImageVariationModel int
)

const (
	DallE          ImageModel          = OrdinalBase
	DallEEdit      ImageEditModel      = OrdinalBase
	DallEVariation ImageVariationModel = OrdinalBase
)

// OtherModel holds identifiers without a wire mapping.
type OtherModel int

const (
	IfCurieV2 OtherModel = OrdinalBase + iota
	IfDavinciV2
	IfDavinci300
)

// ImageSize is the edge length of a generated image.
type ImageSize int

const (
	SizeSmall ImageSize = OrdinalBase + iota
	SizeMedium
	SizeLarge
)

// Role is the author of a chat message.
type Role int

const (
	RoleSystem Role = OrdinalBase + iota
	RoleAssistant
	RoleUser
)
