package main

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/viant/afs"

	"github.com/viant/adatags/ada"
	"github.com/viant/adatags/cache"
)

var scanCmd = &cobra.Command{
	Use:   "scan <dir>",
	Short: "extract tags from every Ada source file under a directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := "."
		if len(args) == 1 {
			dir = args[0]
		} else if len(args) > 1 {
			_ = cmd.Help()
			return fmt.Errorf("adatags: scan takes at most one directory argument")
		}
		opts, err := buildOptions(cmd)
		if err != nil {
			return err
		}

		ctx := context.Background()
		scanner := ada.NewProjectScanner()
		sources, err := scanner.DiscoverSources(ctx, dir)
		if err != nil {
			return err
		}

		if info, err := ada.DetectProjectInfo(ctx, afs.New(), dir); err == nil {
			logrus.WithField("project", info.Name).WithField("origin", info.Origin).Debug("resolved project")
		}
		logrus.WithField("count", len(sources)).WithField("dir", dir).Info("discovered Ada sources")

		store := cache.New()
		for _, src := range sources {
			content, err := scanner.ReadSource(ctx, src)
			if err != nil {
				return err
			}
			hash, err := cache.Hash(content, fingerprint(opts))
			if err != nil {
				return err
			}
			if tags, ok := store.Lookup(src.URL, hash); ok {
				for _, tag := range tags {
					printTag(src.URL, tag)
				}
				continue
			}

			var collected ada.SliceSink
			reader := ada.NewSourceReader(content)
			if err := ada.FindTags(ctx, reader, &collected, opts); err != nil {
				return fmt.Errorf("adatags: scanning %s: %w", src.URL, err)
			}
			store.Store(src.URL, hash, collected.Tags)
			for _, tag := range collected.Tags {
				printTag(src.URL, tag)
			}
		}
		return nil
	},
}

// fingerprint distinguishes cache entries produced under different
// host options, so toggling a flag never serves a stale tag set.
func fingerprint(opts *ada.Options) string {
	s := fmt.Sprintf("fileScope=%t;qualifiedTags=%t", opts.FileScope, opts.QualifiedTags)
	for _, k := range ada.AllKinds() {
		s += fmt.Sprintf(";%s=%t", k.Long(), opts.KindEnabled(k))
	}
	return s
}
