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
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/valpere/perekaz/internal"
	"github.com/valpere/perekaz/internal/apperr"
	"github.com/valpere/perekaz/internal/paraphraser"
	"github.com/valpere/perekaz/internal/ui"
)

var interactiveCmd = &cobra.Command{
	Use:     "interactive",
	Aliases: []string{"i"},
	Short:   "Paraphrase descriptions in an interactive session",
	Long: `Start a read-loop session: paste a description, get the paraphrase,
repeat. The session keeps going through recoverable errors (network,
rate limit, invalid input) and ends only on a rejected API key or an
empty description.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		svc, err := buildService(cfg)
		if err != nil {
			return err
		}

		p := paraphraser.New(svc, cfg.ProviderConfig())

		length, err := ui.PromptTargetLength()
		if err != nil {
			return err
		}

		for {
			text, err := ui.PromptDescription()
			if err != nil {
				return err
			}
			if strings.TrimSpace(text) == "" {
				ui.ShowSuccess("Bye")
				return nil
			}

			req := internal.ParaphraseRequest{
				ID:           uuid.New().String(),
				Description:  text,
				TargetLength: length,
				Timestamp:    time.Now(),
			}

			resp, err := p.Paraphrase(context.Background(), req)
			if err != nil {
				if apperr.IsFatal(err) {
					ui.ShowError(err.Error())
					return fmt.Errorf("session aborted: %w", err)
				}
				// Recoverable: show it and let the user try again.
				ui.ShowError(err.Error())
				continue
			}

			ui.ShowParaphrase(resp.Paraphrased)
			if !paraphraser.IsSignificantlyDifferent(resp.Original, resp.Paraphrased) {
				ui.ShowWarning("paraphrase is very close to the original")
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(interactiveCmd)

	registerProviderFlags(interactiveCmd.Flags())
}
