// Package kube holds the small set of Kubernetes client helpers the serve
// command uses for its startup preflight: resolving the active kubeconfig
// context and counting node readiness. All actual cluster inspection happens
// through the kubectl package; nothing here mutates cluster state.
package kube
