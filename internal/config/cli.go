// Package config defines the root command-line and configuration-file
// structure of tokenforge.
package config

import (
	"github.com/Alia5/tokenforge/internal/cmd"
	"github.com/Alia5/tokenforge/internal/log"
)

// CLI is the kong root. Every flag can also be set from a JSON, YAML or TOML
// config file; flags and environment variables take precedence.
type CLI struct {
	ConfigFile string     `name:"config" help:"Path to a JSON, YAML or TOML configuration file" env:"TOKENFORGE_CONFIG" type:"path"`
	Log        log.Config `embed:"" prefix:"log."`

	Build    cmd.Build         `cmd:"" default:"1" help:"Compile token sources into web, iOS and Android artifacts"`
	Validate cmd.Validate      `cmd:"" help:"Validate token sources without generating artifacts"`
	Check    cmd.Check         `cmd:"" help:"Verify that generated artifacts are up to date"`
	Config   cmd.ConfigCommand `cmd:"" help:"Configuration helpers"`
}
