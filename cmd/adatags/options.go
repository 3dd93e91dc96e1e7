package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/viant/adatags/ada"
)

// buildOptions resolves host options from --config (if given), then
// applies only the --file-scope/--qualified-tags/--kind-enable/
// --kind-disable flags the caller actually set, so an unset flag never
// clobbers a value loaded from a config file.
func buildOptions(cmd *cobra.Command) (*ada.Options, error) {
	var base []ada.Option
	if configPath != "" {
		fromFile, err := ada.LoadOptions(configPath)
		if err != nil {
			return nil, err
		}
		base = append(base, ada.WithFileScope(fromFile.FileScope), ada.WithQualifiedTags(fromFile.QualifiedTags))
		for _, k := range ada.AllKinds() {
			base = append(base, ada.WithKind(k, fromFile.KindEnabled(k)))
		}
	}

	if cmd.Flags().Changed("file-scope") {
		base = append(base, ada.WithFileScope(fileScope))
	}
	if cmd.Flags().Changed("qualified-tags") {
		base = append(base, ada.WithQualifiedTags(qualifiedTags))
	}
	for _, name := range enableKinds {
		k, ok := kindByLongName(name)
		if !ok {
			return nil, fmt.Errorf("adatags: unknown kind %q", name)
		}
		base = append(base, ada.WithKind(k, true))
	}
	for _, name := range disableKinds {
		k, ok := kindByLongName(name)
		if !ok {
			return nil, fmt.Errorf("adatags: unknown kind %q", name)
		}
		base = append(base, ada.WithKind(k, false))
	}
	return ada.NewOptions(base...), nil
}

func kindByLongName(name string) (ada.Kind, bool) {
	for _, k := range ada.AllKinds() {
		if k.Long() == name {
			return k, true
		}
	}
	return ada.Undefined, false
}
