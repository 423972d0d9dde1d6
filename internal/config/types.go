package config

// Config is the top-level configuration structure for kubechat.
type Config struct {
	Model   ModelConfig   `yaml:"model"`
	Server  ServerConfig  `yaml:"server"`
	Kubectl KubectlConfig `yaml:"kubectl"`
}

// ModelConfig describes the chat-completions endpoint used to answer prompts.
type ModelConfig struct {
	Endpoint       string `yaml:"endpoint,omitempty"`       // Base URL, e.g. "http://localhost:11434"
	Name           string `yaml:"name,omitempty"`           // Model name, e.g. "llama3.2"
	APIKey         string `yaml:"apiKey,omitempty"`         // Optional bearer token sent as Authorization header
	TimeoutSeconds int    `yaml:"timeoutSeconds,omitempty"` // Timeout per chat request
}

// ServerConfig describes how the client launches and talks to the tool server.
// An empty Command means "this binary with the serve subcommand".
type ServerConfig struct {
	Command               []string          `yaml:"command,omitempty"` // Command and its arguments, e.g. ["kubechat", "serve"]
	Env                   map[string]string `yaml:"env,omitempty"`     // Extra environment variables for the subprocess
	ConnectTimeoutSeconds int               `yaml:"connectTimeoutSeconds,omitempty"`
	RequestTimeoutSeconds int               `yaml:"requestTimeoutSeconds,omitempty"`
	CallTimeoutSeconds    int               `yaml:"callTimeoutSeconds,omitempty"`
}

// KubectlConfig describes how the tool server invokes kubectl.
type KubectlConfig struct {
	Path           string `yaml:"path,omitempty"`    // kubectl binary, looked up on PATH when not absolute
	Context        string `yaml:"context,omitempty"` // Optional kubeconfig context, passed as --context
	TimeoutSeconds int    `yaml:"timeoutSeconds,omitempty"`
}
