/*
Copyright © 2026 Valentyn Solomko <valentyn.solomko@gmail.com>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/valpere/perekaz/internal"
	"github.com/valpere/perekaz/internal/paraphraser"
	"github.com/valpere/perekaz/internal/ui"
)

var (
	inputFile    string
	outputFile   string
	targetLength string
	copyToClip   bool
)

var paraphraseCmd = &cobra.Command{
	Use:   "paraphrase [description]",
	Short: "Paraphrase a product description",
	Long: `Rewrite a product description in simple, clear language.

The description is taken from the command line, from --input, or from
stdin when neither is given. The result goes to stdout or to --output.

Length hints:
  short    noticeably shorter than the original
  medium   about the same length (default)
  long     somewhat longer than the original`,
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readDescription(args)
		if err != nil {
			return err
		}

		length, ok := internal.ParseTargetLength(targetLength)
		if !ok {
			return fmt.Errorf("invalid --length %q (expected short, medium or long)", targetLength)
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		svc, err := buildService(cfg)
		if err != nil {
			return err
		}

		p := paraphraser.New(svc, cfg.ProviderConfig())

		req := internal.ParaphraseRequest{
			ID:           uuid.New().String(),
			Description:  text,
			TargetLength: length,
			Timestamp:    time.Now(),
		}

		resp, err := p.Paraphrase(context.Background(), req)
		if err != nil {
			return err
		}

		if !paraphraser.IsSignificantlyDifferent(resp.Original, resp.Paraphrased) {
			ui.ShowWarning("paraphrase is very close to the original")
		}

		if outputFile != "" {
			if err := os.MkdirAll(filepath.Dir(outputFile), 0755); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
			if err := os.WriteFile(outputFile, []byte(resp.Paraphrased+"\n"), 0644); err != nil {
				return fmt.Errorf("failed to write output file: %w", err)
			}
			ui.ShowSuccess(fmt.Sprintf("Paraphrase written to %s", outputFile))
		} else {
			fmt.Println(resp.Paraphrased)
		}

		if copyToClip {
			if err := clipboard.WriteAll(resp.Paraphrased); err != nil {
				ui.ShowWarning(fmt.Sprintf("could not copy to clipboard: %v", err))
			} else {
				ui.ShowSuccess("Copied to clipboard")
			}
		}

		if resp.TokensUsed > 0 {
			fmt.Fprintf(os.Stderr, "Tokens used: %d\n", resp.TokensUsed)
		}
		return nil
	},
}

// readDescription resolves the input source: argument, --input file, or
// stdin.
func readDescription(args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	if inputFile != "" {
		data, err := os.ReadFile(inputFile)
		if err != nil {
			return "", fmt.Errorf("failed to read input file: %w", err)
		}
		return string(data), nil
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(data), nil
}

func init() {
	rootCmd.AddCommand(paraphraseCmd)

	paraphraseCmd.Flags().StringVarP(&inputFile, "input", "i", "", "Read the description from a file")
	paraphraseCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Write the paraphrase to a file")
	paraphraseCmd.Flags().StringVarP(&targetLength, "length", "l", "", "Target length hint: short, medium or long")
	paraphraseCmd.Flags().BoolVar(&copyToClip, "copy", false, "Copy the paraphrase to the clipboard")

	registerProviderFlags(paraphraseCmd.Flags())
}
