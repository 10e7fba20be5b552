// Package router decides which backend endpoint a line of user input goes to
// and builds the request payload for it. Routing is pure and never fails.
package router

import "strings"

// Endpoint identifies one of the backend services.
type Endpoint int

const (
	RagSearch Endpoint = iota
	WebSearch
	FileUpload
	DbQuery
)

// Path returns the HTTP path of the endpoint, relative to the base URL.
func (e Endpoint) Path() string {
	switch e {
	case WebSearch:
		return "/web/search"
	case FileUpload:
		return "/file/upload"
	case DbQuery:
		return "/db/query"
	default:
		return "/rag/search"
	}
}

func (e Endpoint) String() string {
	switch e {
	case WebSearch:
		return "web"
	case FileUpload:
		return "file"
	case DbQuery:
		return "db"
	default:
		return "rag"
	}
}

// Payload is the JSON request body for one endpoint. The set of variants is
// closed; each one serializes to the field its endpoint expects.
type Payload interface {
	Endpoint() Endpoint
	isPayload()
}

type WebSearchPayload struct {
	Query string `json:"query"`
}

type RagSearchPayload struct {
	Prompt string `json:"prompt"`
}

type FileUploadPayload struct {
	FileData string `json:"file_data"`
}

type DbQueryPayload struct {
	Query string `json:"query"`
}

// EmptyUploadPayload is an upload request with no file reference. It
// serializes to {}.
type EmptyUploadPayload struct{}

func (WebSearchPayload) Endpoint() Endpoint   { return WebSearch }
func (RagSearchPayload) Endpoint() Endpoint   { return RagSearch }
func (FileUploadPayload) Endpoint() Endpoint  { return FileUpload }
func (DbQueryPayload) Endpoint() Endpoint     { return DbQuery }
func (EmptyUploadPayload) Endpoint() Endpoint { return FileUpload }

func (WebSearchPayload) isPayload()   {}
func (RagSearchPayload) isPayload()   {}
func (FileUploadPayload) isPayload()  {}
func (DbQueryPayload) isPayload()     {}
func (EmptyUploadPayload) isPayload() {}

// Decision is the outcome of routing one input.
type Decision struct {
	Endpoint Endpoint
	Payload  Payload
}

func decide(p Payload) Decision {
	return Decision{Endpoint: p.Endpoint(), Payload: p}
}

// Policy maps non-empty user input to a Decision.
type Policy interface {
	Route(input string) Decision
	Name() string
}

// Routing mode names accepted by New.
const (
	ModePrefix  = "prefix"
	ModeKeyword = "keyword"
)

// New returns the policy for mode. Anything other than "keyword" selects the
// prefix policy.
func New(mode string) Policy {
	if mode == ModeKeyword {
		return KeywordPolicy{}
	}
	return PrefixPolicy{}
}

// Route routes input with the default prefix policy.
func Route(input string) Decision {
	return PrefixPolicy{}.Route(input)
}

// Prefixes recognized by PrefixPolicy, in match order.
const (
	PrefixFile = "file:"
	PrefixWeb  = "web:"
	PrefixDB   = "db:"
	PrefixRag  = "rag:"
)

// PrefixPolicy routes on a case-sensitive leading tag. The payload carries the
// whole input, except for file uploads where the tag is stripped.
type PrefixPolicy struct{}

func (PrefixPolicy) Name() string { return ModePrefix }

func (PrefixPolicy) Route(input string) Decision {
	switch {
	case strings.HasPrefix(input, PrefixFile):
		return decide(FileUploadPayload{FileData: strings.TrimSpace(input[len(PrefixFile):])})
	case strings.HasPrefix(input, PrefixWeb):
		return decide(WebSearchPayload{Query: input})
	case strings.HasPrefix(input, PrefixDB):
		return decide(DbQueryPayload{Query: input})
	default:
		// rag: and untagged input both go to RAG search
		return decide(RagSearchPayload{Prompt: input})
	}
}

// KeywordPolicy is the older routing mode. It looks for trigger phrases
// anywhere in the lowercased input.
type KeywordPolicy struct{}

func (KeywordPolicy) Name() string { return ModeKeyword }

func (KeywordPolicy) Route(input string) Decision {
	lower := strings.ToLower(input)
	switch {
	case strings.Contains(lower, "upload"):
		// No file content can be derived from a phrase
		return decide(EmptyUploadPayload{})
	case strings.Contains(lower, "search from the web"):
		return decide(WebSearchPayload{Query: input})
	case strings.Contains(lower, "find out figures"):
		return decide(DbQueryPayload{Query: input})
	default:
		return decide(RagSearchPayload{Prompt: input})
	}
}
