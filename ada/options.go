package ada

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Options controls emission (spec §5/§6): whether file-scoped tags are
// included, whether dotted qualified-name tags are additionally
// emitted, and which kinds are enabled.
type Options struct {
	FileScope     bool
	QualifiedTags bool

	kindEnabled map[Kind]bool
}

// Option configures an Options value.
type Option func(*Options)

// NewOptions builds an Options with file-scoped tags included and the
// kind descriptor table's default enable matrix (spec §6), then applies
// opts in order.
func NewOptions(opts ...Option) *Options {
	o := &Options{FileScope: true, kindEnabled: defaultKindEnabled()}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func defaultKindEnabled() map[Kind]bool {
	m := make(map[Kind]bool, len(AllKinds()))
	for _, k := range AllKinds() {
		m[k] = k.DefaultEnabled()
	}
	return m
}

// WithFileScope sets whether file-scoped tags are emitted.
func WithFileScope(v bool) Option {
	return func(o *Options) { o.FileScope = v }
}

// WithQualifiedTags sets whether dotted parent.name tags are also
// emitted for qualifying kinds (spec §4.12 step 5).
func WithQualifiedTags(v bool) Option {
	return func(o *Options) { o.QualifiedTags = v }
}

// WithKind overrides a single kind's enable flag.
func WithKind(k Kind, enabled bool) Option {
	return func(o *Options) {
		if o.kindEnabled == nil {
			o.kindEnabled = defaultKindEnabled()
		}
		o.kindEnabled[k] = enabled
	}
}

// KindEnabled reports whether tags of kind k should be emitted under o.
// A nil Options falls back to the kind's own default.
func (o *Options) KindEnabled(k Kind) bool {
	if o == nil {
		return k.DefaultEnabled()
	}
	if v, ok := o.kindEnabled[k]; ok {
		return v
	}
	return k.DefaultEnabled()
}

// optionsFile is the on-disk shape of a YAML options document, keyed by
// each kind's long name (e.g. "package", "autovar").
type optionsFile struct {
	FileScope     bool            `yaml:"fileScope"`
	QualifiedTags bool            `yaml:"qualifiedTags"`
	Kinds         map[string]bool `yaml:"kinds"`
}

// LoadOptions reads host options from a YAML file at path.
func LoadOptions(path string) (*Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ada: reading options file %s: %w", path, err)
	}
	var cfg optionsFile
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("ada: parsing options file %s: %w", path, err)
	}
	opts := []Option{WithFileScope(cfg.FileScope), WithQualifiedTags(cfg.QualifiedTags)}
	for name, enabled := range cfg.Kinds {
		k, ok := kindByLong(name)
		if !ok {
			return nil, fmt.Errorf("ada: options file %s: unknown kind %q", path, name)
		}
		opts = append(opts, WithKind(k, enabled))
	}
	return NewOptions(opts...), nil
}

func kindByLong(name string) (Kind, bool) {
	for _, k := range AllKinds() {
		if k.Long() == name {
			return k, true
		}
	}
	return Undefined, false
}
