package catalog

type entry struct {
	ordinal int
	name    string
	wire    string // empty: declared but never resolvable
}

type table struct {
	entries   []entry
	byOrdinal map[int]entry
	byWire    map[string]int
	byName    map[string]int
}

func newTable(entries []entry, aliases map[string]int) *table {
	t := &table{
		entries:   entries,
		byOrdinal: make(map[int]entry, len(entries)),
		byWire:    make(map[string]int, len(entries)),
		byName:    make(map[string]int, len(entries)+len(aliases)),
	}
	for _, e := range entries {
		t.byOrdinal[e.ordinal] = e
		t.byName[e.name] = e.ordinal
		if e.wire == "" {
			continue
		}
		if _, taken := t.byWire[e.wire]; !taken {
			t.byWire[e.wire] = e.ordinal
		}
	}
	for name, ordinal := range aliases {
		t.byName[name] = ordinal
	}
	return t
}

func textEntry(m TextModel, name, wire string) entry { return entry{int(m), name, wire} }
func chatEntry(m ChatModel, name, wire string) entry { return entry{int(m), name, wire} }

var tables = map[Kind]*table{
	KindText: newTable([]entry{
		textEntry(GPT3, "GPT_3", "text-davinci-003"),
		textEntry(Ada, "ADA", "ada"),
		textEntry(AdaCodeSearchCode, "ADA_CODE_SEARCH_CODE", "ada-code-search-code"),
		textEntry(AdaCodeSearchText, "ADA_CODE_SEARCH_TEXT", "ada-code-search-text"),
		textEntry(AdaSearchDocument, "ADA_SEARCH_DOCUMENT", "ada-search-document"),
		textEntry(AdaSearchQuery, "ADA_SEARCH_QUERY", "ada-search-query"),
		textEntry(AdaSimilarity, "ADA_SIMILARITY", "ada-similarity"),
		textEntry(Ada20200503, "ADA_2020_05_03", "ada:2020-05-03"),
		textEntry(Babbage, "BABBAGE", "babbage"),
		textEntry(BabbageCodeSearchCode, "BABBAGE_CODE_SEARCH_CODE", "babbage-code-search-code"),
		textEntry(BabbageCodeSearchText, "BABBAGE_CODE_SEARCH_TEXT", "babbage-code-search-text"),
		textEntry(BabbageSearchDocument, "BABBAGE_SEARCH_DOCUMENT", "babbage-search-document"),
		textEntry(BabbageSearchQuery, "BABBAGE_SEARCH_QUERY", "babbage-search-query"),
		textEntry(BabbageSimilarity, "BABBAGE_SIMILARITY", "babbage-similarity"),
		textEntry(Babbage20200503, "BABBAGE_2020_05_03", "babbage:2020-05-03"),
		textEntry(CodeSearchAdaCode001, "CODE_SEARCH_ADA_CODE_001", "code-search-ada-code-001"),
		textEntry(CodeSearchAdaText001, "CODE_SEARCH_ADA_TEXT_001", "code-search-ada-text-001"),
		textEntry(CodeSearchBabbageCode001, "CODE_SEARCH_BABBAGE_CODE_001", "code-search-babbage-code-001"),
		textEntry(CodeSearchBabbageText001, "CODE_SEARCH_BABBAGE_TEXT_001", "code-search-babbage-text-001"),
		textEntry(Curie, "CURIE", "curie"),
		textEntry(CurieInstructBeta, "CURIE_INSTRUCT_BETA", "curie-instruct-beta"),
		textEntry(CurieSearchDocument, "CURIE_SEARCH_DOCUMENT", "curie-search-document"),
		textEntry(CurieSearchQuery, "CURIE_SEARCH_QUERY", "curie-search-query"),
		textEntry(CurieSimilarity, "CURIE_SIMILARITY", "curie-similarity"),
		textEntry(Curie20200503, "CURIE_2020_05_03", "curie:2020-05-03"),
		textEntry(Cushman20200503, "CUSHMAN_2020_05_03", "cushman:2020-05-03"),
		textEntry(Davinci, "DAVINCI", "davinci"),
		textEntry(DavinciIf300, "DAVINCI_IF_3_0_0", "davinci-if:3.0.0"),
		textEntry(DavinciInstructBeta, "DAVINCI_INSTRUCT_BETA", "davinci-instruct-beta"),
		textEntry(DavinciInstructBeta200, "DAVINCI_INSTRUCT_BETA_2_0_0", "davinci-instruct-beta:2.0.0"),
		textEntry(DavinciSearchDocument, "DAVINCI_SEARCH_DOCUMENT", "davinci-search-document"),
		textEntry(DavinciSearchQuery, "DAVINCI_SEARCH_QUERY", "davinci-search-query"),
		textEntry(DavinciSimilarity, "DAVINCI_SIMILARITY", "davinci-similarity"),
		textEntry(Davinci20200503, "DAVINCI_2020_05_03", "davinci:2020-05-03"),
		textEntry(TextAda001, "TEXT_ADA_001", "text-ada-001"),
		textEntry(TextAdaColon001, "TEXT_ADA__001", "text-ada:001"),
		textEntry(TextBabbage001, "TEXT_BABBAGE_001", "text-babbage-001"),
		textEntry(TextBabbageColon001, "TEXT_BABBAGE__001", "text-babbage:001"),
		textEntry(TextCurie001, "TEXT_CURIE_001", "text-curie-001"),
		textEntry(TextCurieColon001, "TEXT_CURIE__001", "text-curie:001"),
		textEntry(TextDavinci001, "TEXT_DAVINCI_001", "text-davinci-001"),
		textEntry(TextDavinci002, "TEXT_DAVINCI_002", "text-davinci-002"),
		textEntry(TextDavinci003, "TEXT_DAVINCI_003", "text-davinci-003"),
		textEntry(TextDavinciEdit001, "TEXT_DAVINCI_EDIT_001", "text-davinci-edit-001"),
		textEntry(TextDavinciInsert001, "TEXT_DAVINCI_INSERT_001", "text-davinci-insert-001"),
		textEntry(TextDavinciInsert002, "TEXT_DAVINCI_INSERT_002", "text-davinci-insert-002"),
		textEntry(TextDavinciColon001, "TEXT_DAVINCI__001", "text-davinci:001"),
		textEntry(TextEmbeddingAda002, "TEXT_EMBEDDING_ADA_002", "text-embedding-ada-002"),
		textEntry(TextSearchAdaDoc001, "TEXT_SEARCH_ADA_DOC_001", "text-search-ada-doc-001"),
		textEntry(TextSearchAdaQuery001, "TEXT_SEARCH_ADA_QUERY_001", "text-search-ada-query-001"),
		textEntry(TextSearchBabbageDoc001, "TEXT_SEARCH_BABBAGE_DOC_001", "text-search-babbage-doc-001"),
		textEntry(TextSearchBabbageQuery001, "TEXT_SEARCH_BABBAGE_QUERY_001", "text-search-babbage-query-001"),
		textEntry(TextSearchCurieDoc001, "TEXT_SEARCH_CURIE_DOC_001", "text-search-curie-doc-001"),
		textEntry(TextSearchCurieQuery001, "TEXT_SEARCH_CURIE_QUERY_001", "text-search-curie-query-001"),
		textEntry(TextSearchDavinciDoc001, "TEXT_SEARCH_DAVINCI_DOC_001", "text-search-davinci-doc-001"),
		textEntry(TextSearchDavinciQuery001, "TEXT_SEARCH_DAVINCI_QUERY_001", "text-search-davinci-query-001"),
		textEntry(TextSimilarityAda001, "TEXT_SIMILARITY_ADA_001", "text-similarity-ada-001"),
		textEntry(TextSimilarityBabbage001, "TEXT_SIMILARITY_BABBAGE_001", "text-similarity-babbage-001"),
		textEntry(TextSimilarityCurie001, "TEXT_SIMILARITY_CURIE_001", "text-similarity-curie-001"),
		textEntry(TextSimilarityDavinci001, "TEXT_SIMILARITY_DAVINCI_001", "text-similarity-davinci-001"),
		textEntry(GPT35TurboInstruct, "GPT_35_TURBO_INSTRUCT", "gpt-3.5-turbo-instruct"),
		textEntry(Babbage002, "BABBAGE_002", "babbage-002"),
		textEntry(Davinci002, "DAVINCI_002", "davinci-002"),
	}, map[string]int{"CHAT_GPT": int(ChatGPT)}),

	KindChat: newTable([]entry{
		chatEntry(GPT35Turbo, "GPT_3_5_TURBO", "gpt-3.5-turbo"),
		chatEntry(GPT35Turbo0301, "GPT_3_5_TURBO_0301", "gpt-3.5-turbo-0301"),
		chatEntry(GPT4, "GPT_4", "gpt-4"),
		chatEntry(GPT40314, "GPT_4_0314", "gpt-4-0314"),
	}, nil),

	KindTextEdit: newTable([]entry{
		{int(EditTextDavinci001), "TEXT_DAVINCI_EDIT_001", "text-davinci-edit-001"},
		{int(EditCodeDavinci001), "CODE_DAVINCI_EDIT_001", "code-davinci-edit-001"},
	}, nil),

	KindAudio: newTable([]entry{
		{int(Whisper1), "WHISPER_1", "whisper-1"},
	}, nil),

	// The image model families never had a wire mapping.
	KindImage:          newTable([]entry{{int(DallE), "DALL_E", ""}}, nil),
	KindImageEdit:      newTable([]entry{{int(DallEEdit), "DALL_E_EDIT", ""}}, nil),
	KindImageVariation: newTable([]entry{{int(DallEVariation), "DALL_E_VARIATION", ""}}, nil),

	KindOther: newTable([]entry{
		{int(IfCurieV2), "IF_CURIE_V2", ""},
		{int(IfDavinciV2), "IF_DAVINCI_V2", ""},
		{int(IfDavinci300), "IF_DAVINCI_3_0_0", ""},
	}, nil),

	KindImageSize: newTable([]entry{
		{int(SizeSmall), "SMALL", "256x256"},
		{int(SizeMedium), "MEDIUM", "512x512"},
		{int(SizeLarge), "LARGE", "1024x1024"},
	}, nil),

	KindRole: newTable([]entry{
		{int(RoleSystem), "SYSTEM", "system"},
		{int(RoleAssistant), "ASSISTANT", "assistant"},
		{int(RoleUser), "USER", "user"},
	}, nil),
}
