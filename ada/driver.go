package ada

import "context"

// FindTags runs the full pipeline over one Ada compilation unit: lex,
// parse into a tag tree, then emit tags to sink under opts (spec §4
// overview). A nil opts uses the kind descriptor table's defaults.
//
// ctx is checked between top-level declarations; cancellation aborts
// the parse early but still emits whatever partial tree was built, the
// same as the 1000-EOF deep-exhaustion bailout (spec §7).
func FindTags(ctx context.Context, reader LineReader, sink Sink, opts *Options) error {
	if opts == nil {
		opts = NewOptions()
	}
	if ctx == nil {
		ctx = context.Background()
	}
	cur := newCursor(reader)
	parser := newParser(ctx, cur)
	if err := parser.parse(modeRoot, parser.root); err != nil && ctx.Err() == nil {
		return err
	}
	return emitTree(parser.root, opts, sink)
}
