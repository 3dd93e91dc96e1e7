package ada

// Position is a source location: a line number (1-based) plus an
// opaque file offset supplied by the host's LineReader.
type Position struct {
	Line   int
	Offset int64
}

// Token is one node in the tag tree (spec §3). The root of a tree is a
// sentinel Token of kind Undefined with no name, created by NewTree.
type Token struct {
	Name        string
	Kind        Kind
	IsSpec      bool
	IsPrivate   bool
	Pos         Position
	IsFileScope bool

	Parent   *Token
	Children []*Token
}

// NewTree returns a new root sentinel: parent of all top-level
// declarations parsed from one compilation unit.
func NewTree() *Token {
	return &Token{Kind: Undefined}
}

// isRoot reports whether t is a tree's root sentinel (no parent).
func (t *Token) isRoot() bool {
	return t.Parent == nil && t.Kind == Undefined
}

// fileScopeFor computes is_file_scope for a child about to be created
// under parent, per the invariant in spec §3:
//
//	false iff parent is the root, OR parent is a Separate sentinel, OR
//	parent is a spec of kind {package,subprogram,protected,task} with
//	IsPrivate == false; anything else is file-scoped.
func fileScopeFor(parent *Token) bool {
	if parent == nil || parent.isRoot() {
		return false
	}
	if parent.Kind == Separate {
		return false
	}
	switch parent.Kind {
	case PackageSpec, SubprogramSpec, ProtectedSpec, TaskSpec:
		if parent.IsSpec && !parent.IsPrivate {
			return false
		}
	case Package, Subprogram, Protected, Task:
		// Not yet promoted to a spec kind at creation time (promotion
		// happens only at emit); children are created while is_spec
		// still holds its tentative creation-time value — the parser
		// only clears it to false once the declarative region or
		// accept-body it entered has fully returned, well after any
		// children of that region were created, so a child sees true
		// for exactly as long as its parent's spec-ness is undecided.
		if parent.IsSpec && !parent.IsPrivate {
			return false
		}
	}
	return true
}

// newToken creates a Token with the given name/kind, computes its
// is_file_scope flag, and links it as the last child of parent. A nil
// parent is a programming error in callers; the root sentinel is
// always a valid parent.
func newToken(name string, kind Kind, isSpec bool, parent *Token, pos Position) *Token {
	tok := &Token{
		Name:   name,
		Kind:   kind,
		IsSpec: isSpec,
		Pos:    pos,
		Parent: parent,
	}
	tok.IsFileScope = fileScopeFor(parent)
	parent.Children = append(parent.Children, tok)
	return tok
}

// appendTokens re-parents every node of list onto parent, in order,
// then empties list. Used to attach collected generic formals (or
// accumulated parameter/variable groups) to their subject.
func appendTokens(parent *Token, list *[]*Token) {
	for _, tok := range *list {
		tok.Parent = parent
		tok.IsFileScope = fileScopeFor(parent)
		parent.Children = append(parent.Children, tok)
	}
	*list = nil
}

// freeToken unlinks token from parent's children and discards its
// subtree. Never invoked during emit; used for tokens parsing
// determines were forward declarations of a unit defined elsewhere
// (e.g. `is separate`) and for a statement identifier that turns out
// not to name a block or loop.
func freeToken(parent *Token, token *Token) {
	if parent == nil {
		return
	}
	for i, c := range parent.Children {
		if c == token {
			parent.Children = append(parent.Children[:i], parent.Children[i+1:]...)
			return
		}
	}
}
