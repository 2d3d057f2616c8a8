package main

import (
	"guitarcart/cmd/gcart/render"
	"guitarcart/internal/config"
	"os"

	"github.com/alecthomas/kong"
)

type CLI struct {
	List  ListCmd  `cmd:"" aliases:"ls" help:"List catalog items"`
	Add   AddCmd   `cmd:"" aliases:"a" help:"Add an item to the cart"`
	Rm    RmCmd    `cmd:"" help:"Remove an item from the cart"`
	Inc   IncCmd   `cmd:"" help:"Increase an item's quantity"`
	Dec   DecCmd   `cmd:"" help:"Decrease an item's quantity"`
	Clear ClearCmd `cmd:"" help:"Empty the cart"`
	Show  ShowCmd  `cmd:"" default:"1" help:"Show the cart"`
	Pick  PickCmd  `cmd:"" aliases:"p" help:"Pick an item from the catalog interactively"`
	Item  ItemCmd  `cmd:"" help:"Manage the catalog file"`

	Completion CompletionCmd `cmd:"" help:"Print a shell completion script"`

	CatalogPath string `name:"catalog" short:"c" help:"Path to catalog file"`
	StateDir    string `name:"state-dir" help:"Directory holding the persisted cart"`
	Backend     string `help:"Storage backend (file, sqlite, memory)"`
	LogLevel    string `name:"log-level" help:"Log level (debug, info, warn, error)"`

	closeKV func() error `kong:"-"`
}

// resolveConfig layers command-line flags over the environment.
func (c *CLI) resolveConfig() (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, err
	}
	if c.CatalogPath != "" {
		if cfg.CatalogPath, err = config.ExpandPath(c.CatalogPath); err != nil {
			return config.Config{}, err
		}
	}
	if c.StateDir != "" {
		if cfg.StateDir, err = config.ExpandPath(c.StateDir); err != nil {
			return config.Config{}, err
		}
	}
	if c.Backend != "" {
		cfg.Backend = config.Backend(c.Backend)
	}
	if c.LogLevel != "" {
		cfg.LogLevel = c.LogLevel
	}
	return cfg, cfg.Validate()
}

func (c *CLI) AfterApply(ctx *kong.Context) error {
	cfg, err := c.resolveConfig()
	if err != nil {
		return err
	}

	globals, closeKV, err := newGlobals(cfg, os.Stdout, os.Stderr, render.NewLipglossRendererAuto(os.Stdout))
	if err != nil {
		return err
	}
	c.closeKV = closeKV

	ctx.Bind(globals)
	return nil
}

func (c *CLI) Close() {
	if c.closeKV != nil {
		_ = c.closeKV()
	}
}

func main() {
	cli := CLI{}
	ctx := kong.Parse(&cli,
		kong.Name("gcart"),
		kong.Description("Guitar catalog shopping cart"),
		kong.UsageOnError(),
	)
	err := ctx.Run()
	cli.Close()
	ctx.FatalIfErrorf(err)
}
