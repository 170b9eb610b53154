package commands

import (
	"fmt"

	"git.home.luguber.info/inful/doclink/internal/config"
)

// InitCmd writes an example configuration file.
type InitCmd struct {
	Force bool `help:"Overwrite existing configuration file"`
}

func (i *InitCmd) Run(_ *Global, cli *CLI) error {
	if err := config.Init(cli.Config, i.Force); err != nil {
		return err
	}
	fmt.Printf("Wrote %s\n", cli.Config)
	return nil
}
