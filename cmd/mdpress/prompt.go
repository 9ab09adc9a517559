package main

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	mdpress "github.com/ayase-lab/mdpress"
)

// stdinConfirm returns an overwrite callback backed by an interactive
// y/n/c prompt. EOF or a read error cancels the job.
func stdinConfirm(in io.Reader, out io.Writer) mdpress.ConfirmOverwriteFunc {
	reader := bufio.NewReader(in)
	return func(outputPath string) mdpress.Decision {
		for {
			fmt.Fprintf(out, "%s exists. Overwrite? [y]es / [n]o / [c]ancel: ", filepath.Base(outputPath))
			line, err := reader.ReadString('\n')
			answer := strings.ToLower(strings.TrimSpace(line))
			if err != nil && answer == "" {
				return mdpress.DecisionCancel
			}
			switch answer {
			case "y", "yes":
				return mdpress.DecisionOverwrite
			case "n", "no":
				return mdpress.DecisionSkip
			case "c", "cancel":
				return mdpress.DecisionCancel
			}
			if err != nil {
				return mdpress.DecisionCancel
			}
		}
	}
}
