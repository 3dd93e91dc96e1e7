package main

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/viant/adatags/ada"
)

var tagsCmd = &cobra.Command{
	Use:   "tags <file>",
	Short: "extract tags from a single Ada source file",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			_ = cmd.Help()
			return fmt.Errorf("adatags: tags takes exactly one file argument")
		}
		opts, err := buildOptions(cmd)
		if err != nil {
			return err
		}

		content, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("adatags: reading %s: %w", args[0], err)
		}

		logrus.WithField("file", args[0]).Debug("extracting tags")
		reader := ada.NewSourceReader(content)
		sink := ada.SinkFunc(func(tag ada.Tag) error {
			printTag(args[0], tag)
			return nil
		})
		return ada.FindTags(context.Background(), reader, sink, opts)
	},
}

func printTag(file string, tag ada.Tag) {
	scope := ""
	if tag.Scope != nil {
		scope = fmt.Sprintf("\t%s:%s", tag.Scope.KindName, tag.Scope.Name)
	}
	fmt.Printf("%s\t%s\t%d\t%c%s\n", tag.Name, file, tag.Line, tag.Kind.Letter(), scope)
}
