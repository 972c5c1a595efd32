package summary

// Request is the JSON body for POST /summarize. Exactly one of Content
// or URL should be set; Content wins when both are present.
type Request struct {
	Content string `json:"content"`
	URL     string `json:"url"`
}

// Response is the JSON reply for POST /summarize.
type Response struct {
	Summary  string `json:"summary"`
	Degraded bool   `json:"degraded"`
}
