package wrapgen

// ReturnShape classifies how a wrapper's return section renders.
type ReturnShape int

const (
	// ReturnNone omits the Returns section entirely.
	ReturnNone ReturnShape = iota
	// ReturnSingle renders one bare name/type pair.
	ReturnSingle
	// ReturnList renders a bracketed, ordered name/type list.
	ReturnList
	// ReturnRecord renders the datastruct com_record tag.
	ReturnRecord
)

// ReturnDoc is the composed return-value description of one wrapper. Entry
// order is significant: explicit return first, then signature parameters.
type ReturnDoc struct {
	Shape   ReturnShape
	Entries []Param
}

// OptionalParams reports whether non-receiver parameters default to None.
// Only datastruct constructors accept partial argument lists.
func (k Kind) OptionalParams() bool {
	return k == KindDatastruct
}

// Compose derives the wrapper's return description from the command kind.
// ok is false for unknown kinds, which get no wrapper at all.
func Compose(d Descriptor) (ret ReturnDoc, ok bool) {
	switch d.Kind {
	case KindFunction:
		return composeFunction(d), true
	case KindSubroutine:
		return composeSubroutine(d), true
	case KindDatastruct:
		return composeDatastruct(), true
	}
	return ReturnDoc{}, false
}

// composeFunction: a function always supplies its full argument list and
// returns its single declared value, if the descriptor declares one at all.
func composeFunction(d Descriptor) ReturnDoc {
	if d.Returns == nil {
		return ReturnDoc{Shape: ReturnNone}
	}
	return ReturnDoc{Shape: ReturnSingle, Entries: []Param{*d.Returns}}
}

// composeSubroutine: a subroutine hands results back through its explicit
// return value and through every in/out signature parameter. Exactly one
// returned value renders bare; two or more render as an ordered list.
func composeSubroutine(d Descriptor) ReturnDoc {
	entries := make([]Param, 0, len(d.Sig)+1)
	if d.Returns != nil {
		entries = append(entries, *d.Returns)
	}
	entries = append(entries, d.Sig...)
	switch len(entries) {
	case 0:
		return ReturnDoc{Shape: ReturnNone}
	case 1:
		return ReturnDoc{Shape: ReturnSingle, Entries: entries}
	}
	return ReturnDoc{Shape: ReturnList, Entries: entries}
}

// composeDatastruct: constructing the record is the return value, tagged by
// command name rather than a computed type.
func composeDatastruct() ReturnDoc {
	return ReturnDoc{Shape: ReturnRecord}
}
