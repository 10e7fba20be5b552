package router

import (
	"encoding/json"
	"testing"
)

func TestPrefixPolicy_Route(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		endpoint Endpoint
		payload  Payload
	}{
		{"web prefix keeps whole input", "web: cats", WebSearch, WebSearchPayload{Query: "web: cats"}},
		{"db prefix", "db: total sales 2023", DbQuery, DbQueryPayload{Query: "db: total sales 2023"}},
		{"rag prefix", "rag: explain transformers", RagSearch, RagSearchPayload{Prompt: "rag: explain transformers"}},
		{"file prefix strips and trims", "file: report.pdf", FileUpload, FileUploadPayload{FileData: "report.pdf"}},
		{"file prefix with nothing after", "file:   ", FileUpload, FileUploadPayload{FileData: ""}},
		{"untagged falls back to rag", "what is RAG?", RagSearch, RagSearchPayload{Prompt: "what is RAG?"}},
		{"prefix is case sensitive", "WEB: cats", RagSearch, RagSearchPayload{Prompt: "WEB: cats"}},
		{"prefix must lead", "search web: cats", RagSearch, RagSearchPayload{Prompt: "search web: cats"}},
		{"no space after tag", "db:count", DbQuery, DbQueryPayload{Query: "db:count"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := PrefixPolicy{}.Route(tt.input)
			if d.Endpoint != tt.endpoint {
				t.Errorf("Endpoint = %v, want %v", d.Endpoint, tt.endpoint)
			}
			if d.Payload != tt.payload {
				t.Errorf("Payload = %#v, want %#v", d.Payload, tt.payload)
			}
			if d.Payload.Endpoint() != d.Endpoint {
				t.Errorf("payload endpoint %v disagrees with decision %v", d.Payload.Endpoint(), d.Endpoint)
			}
		})
	}
}

func TestKeywordPolicy_Route(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		endpoint Endpoint
		payload  Payload
	}{
		{"upload anywhere", "Please UPLOAD my csv", FileUpload, EmptyUploadPayload{}},
		{"web phrase", "Search from the web for news", WebSearch, WebSearchPayload{Query: "Search from the web for news"}},
		{"db phrase", "find out figures for Q3", DbQuery, DbQueryPayload{Query: "find out figures for Q3"}},
		{"rag phrase", "Ask explanatory questions about X", RagSearch, RagSearchPayload{Prompt: "Ask explanatory questions about X"}},
		{"fallback", "hello", RagSearch, RagSearchPayload{Prompt: "hello"}},
		{"upload wins over web", "upload then search from the web", FileUpload, EmptyUploadPayload{}},
		{"prefix tags are ignored", "web: cats", RagSearch, RagSearchPayload{Prompt: "web: cats"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := KeywordPolicy{}.Route(tt.input)
			if d.Endpoint != tt.endpoint {
				t.Errorf("Endpoint = %v, want %v", d.Endpoint, tt.endpoint)
			}
			if d.Payload != tt.payload {
				t.Errorf("Payload = %#v, want %#v", d.Payload, tt.payload)
			}
		})
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		mode string
		want string
	}{
		{ModePrefix, ModePrefix},
		{ModeKeyword, ModeKeyword},
		{"", ModePrefix},
		{"unknown", ModePrefix},
	}

	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			if got := New(tt.mode).Name(); got != tt.want {
				t.Errorf("New(%q).Name() = %q, want %q", tt.mode, got, tt.want)
			}
		})
	}
}

func TestRoute_UsesPrefixPolicy(t *testing.T) {
	if d := Route("db: x"); d.Endpoint != DbQuery {
		t.Errorf("Route() endpoint = %v, want DbQuery", d.Endpoint)
	}
}

func TestEndpoint_Path(t *testing.T) {
	tests := []struct {
		endpoint Endpoint
		path     string
		name     string
	}{
		{WebSearch, "/web/search", "web"},
		{RagSearch, "/rag/search", "rag"},
		{FileUpload, "/file/upload", "file"},
		{DbQuery, "/db/query", "db"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.endpoint.Path(); got != tt.path {
				t.Errorf("Path() = %q, want %q", got, tt.path)
			}
			if got := tt.endpoint.String(); got != tt.name {
				t.Errorf("String() = %q, want %q", got, tt.name)
			}
		})
	}
}

func TestPayload_JSONFieldNames(t *testing.T) {
	tests := []struct {
		payload Payload
		want    string
	}{
		{WebSearchPayload{Query: "q"}, `{"query":"q"}`},
		{RagSearchPayload{Prompt: "p"}, `{"prompt":"p"}`},
		{FileUploadPayload{FileData: "f"}, `{"file_data":"f"}`},
		{DbQueryPayload{Query: "d"}, `{"query":"d"}`},
		{EmptyUploadPayload{}, `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.payload.Endpoint().String(), func(t *testing.T) {
			data, err := json.Marshal(tt.payload)
			if err != nil {
				t.Fatalf("Marshal() error = %v", err)
			}
			if string(data) != tt.want {
				t.Errorf("body = %s, want %s", data, tt.want)
			}
		})
	}
}
