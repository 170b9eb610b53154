package commands

import (
	"fmt"

	"git.home.luguber.info/inful/doclink/internal/pipeline"
	"git.home.luguber.info/inful/doclink/internal/verify"
)

// VerifyCmd reports links in the docs tree still using the generator's
// fragment convention for a registered base URL.
type VerifyCmd struct {
	DocsRoot string `name:"docs-root" short:"d" help:"Override the configured docs root"`
}

func (v *VerifyCmd) Run(_ *Global, cli *CLI) error {
	cfg, err := loadConfig(cli)
	if err != nil {
		return err
	}
	root := cfg.Rewrite.DocsRoot
	if v.DocsRoot != "" {
		root = v.DocsRoot
	}

	reg := pipeline.BuildRegistry(cfg)
	findings, err := verify.Tree(root, cfg.Rewrite.Extensions, reg.BaseURLs())
	if err != nil {
		return err
	}
	if len(findings) == 0 {
		fmt.Println("No unrewritten links found")
		return nil
	}
	for _, f := range findings {
		fmt.Printf("%s: %s\n", f.Document, f.Link)
	}
	return fmt.Errorf("found %d unrewritten links", len(findings))
}
