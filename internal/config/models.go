package config

import "time"

// ServerConfig represents the configuration for the HTTP server
type ServerConfig struct {
	ListenAddress   string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	StaticDir       string
}

// HuggingFaceConfig represents the configuration for the hosted
// inference API the classifier models run on
type HuggingFaceConfig struct {
	APIKey         string
	BaseURL        string
	DetectionModel string
	TypeModel      string
	Timeout        time.Duration
	MaxTextSize    int
}

// AnalysisConfig represents the configuration for the analysis pipeline
type AnalysisConfig struct {
	BiasThreshold  float64
	MaxConcurrency int
}

// ChatConfig represents the chat model registry: model name to provider
type ChatConfig struct {
	DefaultModel string
	Models       map[string]string
}

// OpenAIConfig represents the configuration for OpenAI chat
type OpenAIConfig struct {
	APIKey      string
	MaxTokens   int
	Temperature float32
}

// GeminiConfig represents the configuration for Google Gemini chat
type GeminiConfig struct {
	APIKey      string
	MaxTokens   int
	Temperature float32
}

// BedrockConfig represents the configuration for Amazon Bedrock chat
type BedrockConfig struct {
	Region      string
	MaxTokens   int
	Temperature float32
}

// GetServer returns the HTTP server configuration
func (c *Config) GetServer() (ServerConfig, error) {
	readTimeout, err := c.GetDuration("server.read_timeout")
	if err != nil {
		return ServerConfig{}, err
	}
	writeTimeout, err := c.GetDuration("server.write_timeout")
	if err != nil {
		return ServerConfig{}, err
	}
	shutdownTimeout, err := c.GetDuration("server.shutdown_timeout")
	if err != nil {
		return ServerConfig{}, err
	}
	return ServerConfig{
		ListenAddress:   c.GetString("server.listen_address"),
		ReadTimeout:     readTimeout,
		WriteTimeout:    writeTimeout,
		ShutdownTimeout: shutdownTimeout,
		StaticDir:       c.GetString("server.static_dir"),
	}, nil
}

// GetHuggingFace returns the inference API configuration
func (c *Config) GetHuggingFace() (HuggingFaceConfig, error) {
	timeout, err := c.GetDuration("huggingface.timeout")
	if err != nil {
		return HuggingFaceConfig{}, err
	}
	return HuggingFaceConfig{
		APIKey:         c.GetString("huggingface.api_key"),
		BaseURL:        c.GetString("huggingface.base_url"),
		DetectionModel: c.GetString("huggingface.detection_model"),
		TypeModel:      c.GetString("huggingface.type_model"),
		Timeout:        timeout,
		MaxTextSize:    c.GetInt("huggingface.max_text_size"),
	}, nil
}

// GetAnalysis returns the analysis pipeline configuration
func (c *Config) GetAnalysis() AnalysisConfig {
	return AnalysisConfig{
		BiasThreshold:  c.GetFloat64("analysis.bias_threshold"),
		MaxConcurrency: c.GetInt("analysis.max_concurrency"),
	}
}

// GetChat returns the chat model registry
func (c *Config) GetChat() ChatConfig {
	return ChatConfig{
		DefaultModel: c.GetString("chat.default_model"),
		Models:       c.GetStringMapString("chat.models"),
	}
}

// GetOpenAI returns the OpenAI configuration
func (c *Config) GetOpenAI() OpenAIConfig {
	return OpenAIConfig{
		APIKey:      c.GetString("openai.api_key"),
		MaxTokens:   c.GetInt("openai.max_tokens"),
		Temperature: float32(c.GetFloat64("openai.temperature")),
	}
}

// GetGemini returns the Gemini configuration
func (c *Config) GetGemini() GeminiConfig {
	return GeminiConfig{
		APIKey:      c.GetString("gemini.api_key"),
		MaxTokens:   c.GetInt("gemini.max_tokens"),
		Temperature: float32(c.GetFloat64("gemini.temperature")),
	}
}

// GetBedrock returns the Bedrock configuration
func (c *Config) GetBedrock() BedrockConfig {
	return BedrockConfig{
		Region:      c.GetString("bedrock.region"),
		MaxTokens:   c.GetInt("bedrock.max_tokens"),
		Temperature: float32(c.GetFloat64("bedrock.temperature")),
	}
}
