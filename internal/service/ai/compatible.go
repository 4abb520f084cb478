package ai

// NewCompatibleProvider creates a provider for OpenAI-compatible APIs
// such as OpenRouter, Azure OpenAI or Ollama. cfg.BaseURL is required.
func NewCompatibleProvider(cfg Config) *OpenAIProvider {
	return newOpenAIProvider(ProviderCompatible, cfg)
}
