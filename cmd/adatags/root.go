package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:          "adatags",
		Short:        "adatags",
		SilenceUsage: true,
		Long:         `Extracts ctags-style tags from Ada source files.`,
	}

	fileScope     bool
	qualifiedTags bool
	enableKinds   []string
	disableKinds  []string
	configPath    string
)

// Execute runs the adatags root command.
func Execute() error {
	rootCmd.PersistentFlags().BoolVar(&fileScope, "file-scope", true, "include tags local to their file")
	rootCmd.PersistentFlags().BoolVar(&qualifiedTags, "qualified-tags", false, "also emit dotted parent.name tags")
	rootCmd.PersistentFlags().StringSliceVar(&enableKinds, "kind-enable", nil, "kind long names to force on")
	rootCmd.PersistentFlags().StringSliceVar(&disableKinds, "kind-disable", nil, "kind long names to force off")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to a YAML options file")

	rootCmd.AddCommand(tagsCmd, scanCmd)
	return rootCmd.Execute()
}

func init() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
}
