package cmd

import (
	"os"
	"time"

	"kubechat/internal/agent"
	"kubechat/internal/config"
	"kubechat/internal/llm"
)

// serverCommand resolves the tool server invocation: an explicit --server
// flag wins, then the config file, and by default the current binary
// re-invoked with "serve".
func serverCommand(flagValue []string, cfg *config.Config) []string {
	if len(flagValue) > 0 {
		return flagValue
	}
	if len(cfg.Server.Command) > 0 {
		return cfg.Server.Command
	}
	exe, err := os.Executable()
	if err != nil {
		exe = "kubechat"
	}
	return []string{exe, "serve"}
}

// sessionOptions assembles the agent session configuration from the config
// file and the per-command --server override.
func sessionOptions(cfg *config.Config, serverFlag []string) agent.Options {
	return agent.Options{
		Command:        serverCommand(serverFlag, cfg),
		Env:            cfg.Server.Env,
		ClientName:     "kubechat",
		ClientVersion:  rootCmd.Version,
		ConnectTimeout: time.Duration(cfg.Server.ConnectTimeoutSeconds) * time.Second,
		RequestTimeout: time.Duration(cfg.Server.RequestTimeoutSeconds) * time.Second,
		CallTimeout:    time.Duration(cfg.Server.CallTimeoutSeconds) * time.Second,
	}
}

// modelClient builds the chat client, giving flags precedence over the
// config file.
func modelClient(cfg *config.Config, endpointFlag, modelFlag, apiKeyFlag string) *llm.Client {
	endpoint := cfg.Model.Endpoint
	if endpointFlag != "" {
		endpoint = endpointFlag
	}
	model := cfg.Model.Name
	if modelFlag != "" {
		model = modelFlag
	}
	apiKey := cfg.Model.APIKey
	if apiKeyFlag != "" {
		apiKey = apiKeyFlag
	}

	return llm.New(llm.Options{
		Endpoint: endpoint,
		Model:    model,
		APIKey:   apiKey,
		Timeout:  time.Duration(cfg.Model.TimeoutSeconds) * time.Second,
	})
}
