package wrapgen

import (
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	yaml "gopkg.in/yaml.v3"
)

// DocSection is one heading/body pair of a command's documentation block.
type DocSection struct {
	Heading string
	Body    string
}

// DocBlock keeps the store's section order, which a plain Go map would lose.
type DocBlock []DocSection

func (b *DocBlock) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return errors.Newf("line %d: documentation block must be a mapping", node.Line)
	}
	out := make(DocBlock, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		out = append(out, DocSection{
			Heading: node.Content[i].Value,
			Body:    node.Content[i+1].Value,
		})
	}
	*b = out
	return nil
}

// DocStore maps command names to their documentation blocks. Commands
// without an entry simply have no narrative documentation.
type DocStore map[string]DocBlock

// LoadDocs reads the documentation store. An unreadable store aborts the
// run; a command missing from a readable store does not.
func LoadDocs(path string) (DocStore, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read documentation store %s", path)
	}
	var store DocStore
	if err := yaml.Unmarshal(data, &store); err != nil {
		return nil, errors.Wrapf(err, "parse documentation store %s", path)
	}
	return store, nil
}

// Format renders the block for embedding into a wrapper docstring: per
// section a heading, a dashed underline and the wrapped body, each line
// carrying indent. A nil block renders empty.
func (b DocBlock) Format(indent string) string {
	var sb strings.Builder
	for _, s := range b {
		sb.WriteString(indent + s.Heading + "\n")
		sb.WriteString(indent + strings.Repeat("-", len(s.Heading)) + "\n")
		if body := wrapLongLines(s.Body, defaultWrapCols, indent); body != "" {
			sb.WriteString(indent + body + "\n")
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
