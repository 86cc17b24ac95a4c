package dto

// ChatRequest is a message sent to the scripted chat endpoint.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse is the canned reply for a matched intent.
type ChatResponse struct {
	Intent string `json:"intent"`
	Reply  string `json:"reply"`
}
