// Package deploy probes the local toolchain and renders platform
// deployment configs. Static text only; no state.
package deploy

import (
	"context"
	"os/exec"
	"time"
)

// Targets are the supported deployment platforms.
var Targets = []string{"render", "vercel", "railway", "fly.io"}

// Preferred is the default platform. Runs about $7/month on the starter plan.
const (
	Preferred   = "render"
	MonthlyCost = 7
)

// Checker probes local commands needed for building and shipping.
type Checker struct {
	Timeout time.Duration
}

// NewChecker returns a checker with a 5 second per-command timeout.
func NewChecker() *Checker {
	return &Checker{Timeout: 5 * time.Second}
}

// Readiness is the full deploy-check report: which build tools answer,
// plus the platform choices and what the preferred one costs.
type Readiness struct {
	Tools       map[string]bool `json:"tools"`
	Targets     []string        `json:"targets"`
	Preferred   string          `json:"preferred"`
	MonthlyCost int             `json:"monthly_cost"`
}

// Readiness probes the local toolchain and bundles the platform summary.
func (c *Checker) Readiness(ctx context.Context) Readiness {
	return Readiness{
		Tools:       c.CheckRequirements(ctx),
		Targets:     Targets,
		Preferred:   Preferred,
		MonthlyCost: MonthlyCost,
	}
}

// CheckRequirements reports which build tools answer a version query.
func (c *Checker) CheckRequirements(ctx context.Context) map[string]bool {
	return map[string]bool{
		"go":     c.hasCommand(ctx, "go", "version"),
		"node":   c.hasCommand(ctx, "node", "--version"),
		"git":    c.hasCommand(ctx, "git", "--version"),
		"docker": c.hasCommand(ctx, "docker", "--version"),
	}
}

func (c *Checker) hasCommand(ctx context.Context, name string, args ...string) bool {
	ctx, cancel := context.WithTimeout(ctx, c.Timeout)
	defer cancel()
	return exec.CommandContext(ctx, name, args...).Run() == nil
}

// RenderConfig returns the deployment config for the given platform, or
// an empty string for an unknown one.
func RenderConfig(platform string) string {
	switch platform {
	case "render":
		return `services:
  - type: web
    name: mindforge-ai
    env: go
    buildCommand: go build -o mindforge ./cmd/mindforge
    startCommand: ./mindforge serve
    plan: starter
`
	case "vercel":
		return `{
  "version": 2,
  "builds": [
    { "src": "cmd/mindforge/main.go", "use": "@vercel/go" }
  ],
  "routes": [
    { "src": "/api/(.*)", "dest": "cmd/mindforge/main.go" }
  ]
}
`
	}
	return ""
}
