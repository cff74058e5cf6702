package wrapgen

import (
	"os"

	"github.com/cockroachdb/errors"
	yaml "gopkg.in/yaml.v3"
)

// Kind classifies a FRED command. It decides the wrapper's argument policy,
// its return description and which dispatch body is emitted.
type Kind string

const (
	KindFunction   Kind = "function"
	KindSubroutine Kind = "subroutine"
	KindDatastruct Kind = "datastruct"
	KindUnknown    Kind = "unknown"
)

// ParseKind maps a descriptor cmdtype to a Kind. Anything unrecognized is
// KindUnknown, never an error; unknown commands are skipped later with a
// notice rather than failing the run.
func ParseKind(s string) Kind {
	switch Kind(s) {
	case KindFunction, KindSubroutine, KindDatastruct:
		return Kind(s)
	}
	return KindUnknown
}

// Param is one name/type entry of a command signature. The store writes it
// as a two-element sequence, e.g. ["Units", "String"].
type Param struct {
	Name string
	Type string
}

func (p *Param) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.SequenceNode || len(node.Content) != 2 {
		return errors.Newf("line %d: signature entry must be a [name, type] pair", node.Line)
	}
	p.Name = node.Content[0].Value
	p.Type = node.Content[1].Value
	return nil
}

// returnEntry decodes the descriptor returns field: an empty sequence when
// the command returns nothing, otherwise a single name/type pair.
type returnEntry struct {
	Param *Param
}

func (r *returnEntry) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.SequenceNode {
		return errors.Newf("line %d: returns must be a sequence", node.Line)
	}
	if len(node.Content) == 0 {
		r.Param = nil
		return nil
	}
	var p Param
	if err := p.UnmarshalYAML(node); err != nil {
		return err
	}
	r.Param = &p
	return nil
}

// Descriptor describes one command of the FRED automation surface: what it
// is, what it takes and what it gives back. Sig order is the call-site
// positional order.
type Descriptor struct {
	Kind    Kind
	Descr   string
	Returns *Param
	Sig     []Param
}

func (d *Descriptor) UnmarshalYAML(node *yaml.Node) error {
	var raw struct {
		CmdType string      `yaml:"cmdtype"`
		Descr   string      `yaml:"descr"`
		Returns returnEntry `yaml:"returns"`
		Sig     []Param     `yaml:"sig"`
	}
	if err := node.Decode(&raw); err != nil {
		return err
	}
	d.Kind = ParseKind(raw.CmdType)
	d.Descr = raw.Descr
	d.Returns = raw.Returns.Param
	d.Sig = raw.Sig
	return nil
}

// LoadDescriptors reads the descriptor store: a YAML mapping from command
// name to descriptor. An unreadable store aborts the run.
func LoadDescriptors(path string) (map[string]Descriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read descriptor store %s", path)
	}
	var store map[string]Descriptor
	if err := yaml.Unmarshal(data, &store); err != nil {
		return nil, errors.Wrapf(err, "parse descriptor store %s", path)
	}
	return store, nil
}
