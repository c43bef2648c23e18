package entity

// AIRequest is what the recommendation usecase hands to a model provider.
type AIRequest struct {
	SystemInstruction string `json:"system_instruction"`
	Prompt            string `json:"prompt"`
}

// AIResponse carries the raw structured output of a provider before validation.
type AIResponse struct {
	Content    string `json:"content"` // JSON text as returned by the model
	Model      string `json:"model"`   // Which model actually answered?
	TokenCount int    `json:"token_count"`
	Latency    int64  `json:"latency_ms"`
}
