package config

// Built-in defaults. The model defaults target a local Ollama install; any
// OpenAI-compatible chat-completions server works.
const (
	DefaultModelEndpoint = "http://localhost:11434"
	DefaultModelName     = "llama3.2"

	DefaultModelTimeoutSeconds   = 120
	DefaultConnectTimeoutSeconds = 30
	DefaultRequestTimeoutSeconds = 30
	DefaultCallTimeoutSeconds    = 60
	DefaultKubectlTimeoutSeconds = 30

	DefaultKubectlPath = "kubectl"
)

// DefaultConfig returns the configuration kubechat starts from before the
// user and project files are layered on top. Server.Command is left empty on
// purpose: the session falls back to re-invoking the current binary with the
// serve subcommand.
func DefaultConfig() Config {
	return Config{
		Model: ModelConfig{
			Endpoint:       DefaultModelEndpoint,
			Name:           DefaultModelName,
			TimeoutSeconds: DefaultModelTimeoutSeconds,
		},
		Server: ServerConfig{
			ConnectTimeoutSeconds: DefaultConnectTimeoutSeconds,
			RequestTimeoutSeconds: DefaultRequestTimeoutSeconds,
			CallTimeoutSeconds:    DefaultCallTimeoutSeconds,
		},
		Kubectl: KubectlConfig{
			Path:           DefaultKubectlPath,
			TimeoutSeconds: DefaultKubectlTimeoutSeconds,
		},
	}
}
