package wrapgen

import (
	"fmt"
	"path"
	"strings"
)

// stubExt is the extension of the per-command VBScript stub files the
// emitted wrappers dispatch through.
const stubExt = ".frs"

// WrapperSpec is the pre-render description of one wrapper: everything the
// renderer needs, nothing left for it to decide. Built fresh per command and
// discarded once rendered.
type WrapperSpec struct {
	Name    string
	Kind    Kind
	Params  []NormParam // receiver first, then signature order
	Sig     []Param     // raw store signature, for the Parameters section
	Descr   string
	Ret     ReturnDoc
	DocText string      // pre-formatted narrative documentation
	StubDir string
}

// BuildWrapperSpec runs the normalizer and the composer for one command.
// ok is false when the kind is unknown and no wrapper should be emitted.
func BuildWrapperSpec(name string, d Descriptor, doc DocBlock, stubDir string) (WrapperSpec, bool) {
	ret, ok := Compose(d)
	if !ok {
		return WrapperSpec{}, false
	}
	return WrapperSpec{
		Name:    name,
		Kind:    d.Kind,
		Params:  NormalizeParams(d.Sig),
		Sig:     d.Sig,
		Descr:   d.Descr,
		Ret:     ret,
		DocText: doc.Format(i2),
		StubDir: stubDir,
	}, true
}

// Render emits the complete wrapper definition, separator line included.
func (w WrapperSpec) Render() string {
	var sb strings.Builder
	sb.WriteString(i1 + "# " + strings.Repeat("=-", 36) + "=\n")
	sb.WriteString(i1 + "def " + w.Name + "(" + w.argList() + "):\n")
	sb.WriteString(i2 + "r\"\"\"\n")
	sb.WriteString(i2 + "Python API documentation:\n")
	sb.WriteString(i2 + "=========================\n")
	sb.WriteString(i2 + w.descText() + "\n")
	sb.WriteString("\n")
	w.writeParamSection(&sb)
	sb.WriteString(w.returnSection())
	sb.WriteString("\n")
	sb.WriteString(i2 + "FRED documentation:\n")
	sb.WriteString(i2 + "===================\n")
	sb.WriteString(w.DocText)
	sb.WriteString(i2 + "\"\"\"\n")
	w.writeBody(&sb)
	return sb.String()
}

// argList renders the def-line arguments: receiver first, then the
// normalized names, each defaulting to None when the kind allows partial
// construction. Long lists wrap under the opening parenthesis.
func (w WrapperSpec) argList() string {
	args := make([]string, 0, len(w.Params))
	for _, p := range w.Params {
		if w.Kind.OptionalParams() && p.Name != receiverName {
			args = append(args, p.Name+"=None")
			continue
		}
		args = append(args, p.Name)
	}
	return wrapLongLines(strings.Join(args, ", "), argWrapCols, argWrapIndent)
}

// descText synthesizes the leading description block of the docstring.
func (w WrapperSpec) descText() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Wrapper for FRED %s %s.\n", w.Name, strings.ToUpper(string(w.Kind)))
	if w.Kind.OptionalParams() {
		sb.WriteString(i2 + "Does not require all parameters to be set when invoked.\n")
	} else {
		sb.WriteString(i2 + "Requires all parameters to be set when invoked.\n")
	}
	sb.WriteString("\n")
	sb.WriteString(i2 + wrapLongLines(w.Descr, defaultWrapCols, i2))
	return sb.String()
}

// writeParamSection lists every non-receiver parameter with its array
// annotation and translated type. Commands without parameters get none.
func (w WrapperSpec) writeParamSection(sb *strings.Builder) {
	if len(w.Sig) == 0 {
		return
	}
	sb.WriteString(i2 + "Parameters\n")
	sb.WriteString(i2 + "----------\n")
	for i, p := range w.Sig {
		np := w.Params[i+1] // slot 0 is the receiver
		fmt.Fprintf(sb, "%s%s: %s%s\n", i2, np.Name, np.Annot(), PyType(p.Type))
	}
}

// returnSection renders the composed return description, or nothing at all
// when the shape is empty.
func (w WrapperSpec) returnSection() string {
	if w.Ret.Shape == ReturnNone {
		return ""
	}
	head := "\n" + i2 + "Returns\n" + i2 + "-------\n"
	if w.Ret.Shape == ReturnRecord {
		return head + i2 + fmt.Sprintf("datastruct: <com_record %s>\n", w.Name)
	}
	pairs := make([]string, 0, len(w.Ret.Entries))
	for _, e := range w.Ret.Entries {
		pairs = append(pairs, fmt.Sprintf("%s: %s", e.Name, PyType(e.Type)))
	}
	body := strings.Join(pairs, ", ")
	if w.Ret.Shape == ReturnList {
		body = "[" + body + "]"
	}
	return head + i2 + body + "\n"
}

// writeBody emits the dispatch body. Datastructs build a COM record and set
// only the fields whose parameters were supplied; functions and subroutines
// dispatch through the command's VBScript stub.
func (w WrapperSpec) writeBody(sb *strings.Builder) {
	if w.Kind == KindDatastruct {
		fmt.Fprintf(sb, "%sdstruct = w32.Record(\"%s\", self._dobj)\n", i2, w.Name)
		for _, p := range w.Params[1:] {
			fmt.Fprintf(sb, "%sif %s is not None:\n", i2, p.Name)
			fmt.Fprintf(sb, "%ssetattr(dstruct, \"%s\", %s)\n", i3, p.Name, p.Name)
		}
		sb.WriteString(i2 + "return dstruct\n")
		return
	}
	names := make([]string, 0, len(w.Params)-1)
	for _, p := range w.Params[1:] {
		names = append(names, p.Name)
	}
	paramStr := wrapLongLines(strings.Join(names, ", "), argWrapCols, argWrapIndent)
	if paramStr == "" {
		// libfunct must never be called with a truly empty argument list
		paramStr = "None"
	}
	stubPath := path.Join(w.StubDir, w.Name+stubExt)
	fmt.Fprintf(sb, "%slib = self._dobj.CreateLib(r\"%s\")\n", i2, stubPath)
	fmt.Fprintf(sb, "%sreturn lib.libfunct(%s)\n", i2, paramStr)
}
