// Package config provides configuration management for kubechat.
//
// This package implements a layered configuration system that allows users to
// customize kubechat's behavior through YAML files. Configuration is loaded
// from multiple sources and merged in a specific order, with later sources
// overriding earlier ones.
//
// # Configuration Layers
//
// Configuration is loaded and merged in the following order:
//
//  1. Default Configuration (embedded in binary)
//     - Provides sensible defaults for all settings
//     - Ensures kubechat works out-of-the-box against a local Ollama
//
//  2. User Configuration (~/.config/kubechat/config.yaml)
//     - User-specific settings that apply to all projects
//
//  3. Project Configuration (./.kubechat/config.yaml)
//     - Project-specific settings in the current directory
//     - Allows teams to share configuration via version control
//
// # Configuration Structure
//
// The configuration file uses YAML format with the following sections:
//
//	model:
//	  endpoint: "http://localhost:11434"  # OpenAI/Ollama-compatible base URL
//	  name: "llama3.2"                    # model to request
//	  apiKey: ""                          # optional bearer token
//	  timeoutSeconds: 120                 # per chat request
//
//	server:
//	  command: ["kubechat", "serve"]      # how the client launches the tool server
//	  env:
//	    KUBECONFIG: "/home/me/.kube/config"
//	  connectTimeoutSeconds: 30
//	  requestTimeoutSeconds: 30
//	  callTimeoutSeconds: 60
//
//	kubectl:
//	  path: "kubectl"                     # binary the tool server shells out to
//	  context: ""                         # optional kubeconfig context override
//	  timeoutSeconds: 30                  # per kubectl invocation
//
// Missing files are not an error; malformed YAML is. Command-line flags take
// precedence over every file layer.
package config
