package config

// NewKeywords creates a Keywords config for testing purposes
func NewKeywords(path string) *Keywords {
	return &Keywords{path: path}
}

// NewOpenAIForTest creates an OpenAI config for testing purposes
func NewOpenAIForTest(apiKey, model string) *OpenAI {
	return &OpenAI{
		apiKey: apiKey,
		model:  model,
	}
}
