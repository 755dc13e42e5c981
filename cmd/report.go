package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/bwalloc/bwalloc/alloc"
)

func writeReport(result *alloc.Result, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report file: %w", err)
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return nil
}
