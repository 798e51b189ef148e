package cli

import (
	"github.com/spf13/cobra"

	"github.com/fencelint/fencelint/internal/logging"
	"github.com/fencelint/fencelint/pkg/linter"
)

func newLanguagesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "languages",
		Short: "List supported languages",
		Long: `List the language identifiers with a registered linter adapter and the
external tool backing each one.`,
		Run: func(_ *cobra.Command, _ []string) {
			logger := logging.NewInteractive()

			for _, lang := range linter.DefaultRegistry.Languages() {
				adapter, err := linter.DefaultRegistry.Lookup(lang)
				if err != nil {
					continue
				}
				logger.Info(lang, logging.FieldTool, adapter.Tool())
			}
		},
	}

	return cmd
}
