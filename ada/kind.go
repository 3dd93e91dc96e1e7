package ada

import "fmt"

// Kind identifies the category of a declared Ada entity. The zero value
// Undefined never appears on an emitted tag.
type Kind int

const (
	Undefined Kind = iota
	Separate       // sentinel carrying a separate unit's parent name; never emitted

	Package
	PackageSpec
	Type
	TypeSpec
	Subtype
	SubtypeSpec
	RecordComponent
	EnumLiteral
	Variable
	VariableSpec
	Formal
	Constant
	Exception
	Subprogram
	SubprogramSpec
	Task
	TaskSpec
	Protected
	ProtectedSpec
	Entry
	EntrySpec
	Label
	Identifier
	AutomaticVariable
	Anonymous

	kindCount
)

type kindAttributes struct {
	letter  byte
	long    string
	enabled bool
}

// kindTable is the host-visible kind descriptor table (spec §6).
var kindTable = [kindCount]kindAttributes{
	Undefined:         {0, "", false},
	Separate:          {0, "", false},
	Package:           {'p', "package", true},
	PackageSpec:       {'P', "packspec", false},
	Type:              {'t', "type", true},
	TypeSpec:          {'T', "typespec", false},
	Subtype:           {'u', "subtype", true},
	SubtypeSpec:       {'U', "subspec", false},
	RecordComponent:   {'c', "component", true},
	EnumLiteral:       {'l', "literal", true},
	Variable:          {'v', "variable", true},
	VariableSpec:      {'V', "varspec", false},
	Formal:            {'f', "formal", true},
	Constant:          {'n', "constant", true},
	Exception:         {'x', "exception", true},
	Subprogram:        {'r', "subprogram", true},
	SubprogramSpec:    {'R', "subprogspec", true},
	Task:              {'k', "task", true},
	TaskSpec:          {'K', "taskspec", true},
	Protected:         {'o', "protected", true},
	ProtectedSpec:     {'O', "protectspec", true},
	Entry:             {'e', "entry", true},
	EntrySpec:         {'E', "entryspec", false},
	Label:             {'b', "label", true},
	Identifier:        {'i', "identifier", true},
	AutomaticVariable: {'a', "autovar", false},
	Anonymous:         {'y', "annon", false},
}

// specOf maps each body/primary kind to its spec-kind counterpart.
// Kinds absent from this table have no spec form.
var specOf = map[Kind]Kind{
	Package:    PackageSpec,
	Type:       TypeSpec,
	Subtype:    SubtypeSpec,
	Variable:   VariableSpec,
	Subprogram: SubprogramSpec,
	Task:       TaskSpec,
	Protected:  ProtectedSpec,
	Entry:      EntrySpec,
}

// inRange reports whether k is one of the emit-eligible kinds (i.e. has
// an entry in the kind descriptor table and is not a bookkeeping sentinel).
func (k Kind) inRange() bool {
	return k > Undefined && k < kindCount && k != Separate
}

// Letter returns the single-character kind code used by host tooling.
func (k Kind) Letter() byte {
	if !k.inRange() {
		return 0
	}
	return kindTable[k].letter
}

// Long returns the long kind name (e.g. "subprogram").
func (k Kind) Long() string {
	if !k.inRange() {
		return ""
	}
	return kindTable[k].long
}

// DefaultEnabled reports whether this kind is emitted absent any
// host override.
func (k Kind) DefaultEnabled() bool {
	if !k.inRange() {
		return false
	}
	return kindTable[k].enabled
}

// SpecKind returns the spec-kind counterpart of k, and whether k has one.
func (k Kind) SpecKind() (Kind, bool) {
	s, ok := specOf[k]
	return s, ok
}

func (k Kind) String() string {
	if k == Undefined {
		return "undefined"
	}
	if k == Separate {
		return "separate"
	}
	if !k.inRange() {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindTable[k].long
}

// AllKinds returns every emit-eligible kind in declaration order, for
// iterating the descriptor table (e.g. building a default-enabled map).
func AllKinds() []Kind {
	out := make([]Kind, 0, int(kindCount)-2)
	for k := Kind(1); k < kindCount; k++ {
		if k.inRange() {
			out = append(out, k)
		}
	}
	return out
}
