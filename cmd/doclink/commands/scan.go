package commands

import (
	"fmt"
	"sort"

	"git.home.luguber.info/inful/doclink/internal/pipeline"
)

// ScanCmd prints the artifact -> documentation URL mapping the matcher would
// produce, without touching any document.
type ScanCmd struct{}

func (s *ScanCmd) Run(_ *Global, cli *CLI) error {
	cfg, err := loadConfig(cli)
	if err != nil {
		return err
	}

	reg := pipeline.BuildRegistry(cfg)
	mappings, err := pipeline.BuildMappings(cfg, reg)
	if err != nil {
		return err
	}

	files := make([]string, 0, len(mappings))
	for file := range mappings {
		files = append(files, file)
	}
	sort.Strings(files)
	for _, file := range files {
		fmt.Printf("%s -> %s\n", file, mappings[file])
	}
	return nil
}
