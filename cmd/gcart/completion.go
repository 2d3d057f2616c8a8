package main

import (
	_ "embed"
	"fmt"
)

var (
	//go:embed completions/gcart.bash
	bashCompletion []byte
	//go:embed completions/gcart.zsh
	zshCompletion []byte
	//go:embed completions/gcart.fish
	fishCompletion []byte
)

type CompletionCmd struct {
	Shell string `arg:"" enum:"bash,zsh,fish" help:"Shell type (bash, zsh, fish)"`
}

func (cmd *CompletionCmd) Run(g *Globals) error {
	var script []byte
	switch cmd.Shell {
	case "bash":
		script = bashCompletion
	case "zsh":
		script = zshCompletion
	case "fish":
		script = fishCompletion
	default:
		return fmt.Errorf("unsupported shell: %s", cmd.Shell)
	}

	if _, err := g.Out.Write(script); err != nil {
		return fmt.Errorf("failed to write completion script: %w", err)
	}
	return nil
}
