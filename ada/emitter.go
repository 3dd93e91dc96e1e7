package ada

// qualifiedExcluded reports whether kind k is excluded from the
// dotted-qualified-name mechanism and from extending the qualified
// scope accumulator for its children (spec §4.12 step 5).
func qualifiedExcluded(k Kind) bool {
	switch k {
	case RecordComponent, EnumLiteral, Formal, Label, Identifier, AutomaticVariable, Anonymous:
		return true
	}
	return false
}

// emitTree walks root's children, applying spec-kind promotion, scope
// computation, and emission gating (spec §4.12), sending every
// emit-eligible tag to sink.
func emitTree(root *Token, opts *Options, sink Sink) error {
	for _, child := range root.Children {
		if err := emitNode(child, "", opts, sink); err != nil {
			return err
		}
	}
	return nil
}

// emitNode implements spec §4.12 steps 1-6 for a single token, then
// recurses over its children with the scope accumulator.
func emitNode(tok *Token, parentScope string, opts *Options, sink Sink) error {
	// Step 1: one-way spec-kind promotion.
	if tok.IsSpec {
		if s, ok := tok.Kind.SpecKind(); ok {
			tok.Kind = s
		} else {
			tok.Kind = Undefined
		}
	}

	// Step 3: synthetic name for an anonymous frame with children.
	if tok.Kind == Anonymous && tok.Name == "" && len(tok.Children) > 0 {
		tok.Name = "declare"
	}

	// Step 2: structural scope, derived from the actual tree parent.
	scope := scopeOf(tok.Parent)

	emitted := tok.Kind.inRange() &&
		opts.KindEnabled(tok.Kind) &&
		tok.Name != "" &&
		(tok.Kind != Anonymous || len(tok.Children) > 0) &&
		(opts.FileScope || !tok.IsFileScope)

	if emitted {
		if err := sink.MakeTag(Tag{
			Name:        tok.Name,
			Kind:        tok.Kind,
			Line:        tok.Pos.Line,
			FilePos:     tok.Pos.Offset,
			IsFileScope: tok.IsFileScope,
			Scope:       scope,
		}); err != nil {
			return err
		}
	}

	// Steps 5-6: qualified tag and scope accumulator for children.
	currentScope := parentScope
	if !qualifiedExcluded(tok.Kind) {
		if parentScope != "" {
			qualified := parentScope + "." + tok.Name
			if emitted && opts.QualifiedTags {
				if err := sink.MakeTag(Tag{
					Name:        qualified,
					Kind:        tok.Kind,
					Line:        tok.Pos.Line,
					FilePos:     tok.Pos.Offset,
					IsFileScope: tok.IsFileScope,
					Scope:       scope,
				}); err != nil {
					return err
				}
			}
			currentScope = qualified
		} else {
			currentScope = tok.Name
		}
	}

	for _, c := range tok.Children {
		if err := emitNode(c, currentScope, opts, sink); err != nil {
			return err
		}
	}
	return nil
}

// scopeOf computes the structural scope of a token whose tree parent is
// parent (spec §4.12 step 2): no scope for the tree root or a nil
// parent, ("separate", name) for a Separate sentinel, otherwise
// (parent's kind long name, parent's name).
func scopeOf(parent *Token) *Scope {
	if parent == nil || parent.isRoot() {
		return nil
	}
	if parent.Kind == Separate {
		return &Scope{KindName: "separate", Name: parent.Name}
	}
	return &Scope{KindName: parent.Kind.Long(), Name: parent.Name}
}
