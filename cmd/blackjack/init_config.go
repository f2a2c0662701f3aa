package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/lox/blackjack/internal/config"
)

type InitConfigCmd struct {
	Path  string `arg:"" optional:"" default:"blackjack.hcl" help:"Where to write the config"`
	Force bool   `short:"f" help:"Overwrite an existing file"`
}

func (c *InitConfigCmd) Run() error {
	if _, err := os.Stat(c.Path); err == nil && !c.Force {
		return fmt.Errorf("%s already exists, use --force to overwrite", c.Path)
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	if err := config.Write(c.Path, config.Default()); err != nil {
		return err
	}
	fmt.Printf("Wrote %s\n", c.Path)
	return nil
}
