package wrapgen

import (
	"io"
	"os"
	"sort"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/pterm/pterm"
	"go.uber.org/zap"
)

// Generator writes the wrapper module for every command in the descriptor
// store. One run, one artifact; commands are generated independently and
// sequentially, the output file being the only shared sink.
type Generator struct {
	Config Config
	Log    *zap.SugaredLogger
	Now    func() time.Time // stubbed in tests for reproducible artifacts
}

// NewGenerator wires a generator with a real clock. A nil logger is
// replaced with a no-op one.
func NewGenerator(cfg Config, log *zap.SugaredLogger) *Generator {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Generator{Config: cfg, Log: log, Now: time.Now}
}

// Run loads both stores and writes the artifact. A store that cannot be
// read aborts the run with no partial-output guarantee; per-command
// conditions (unknown kind, missing documentation) never do.
func (g *Generator) Run() error {
	api, err := LoadDescriptors(g.Config.APIFile)
	if err != nil {
		return err
	}
	docs, err := LoadDocs(g.Config.DocFile)
	if err != nil {
		return err
	}
	out, err := os.Create(g.Config.Output)
	if err != nil {
		return errors.Wrapf(err, "create %s", g.Config.Output)
	}
	n, genErr := g.generate(out, api, docs)
	closeErr := out.Close()
	if genErr != nil {
		return genErr
	}
	if closeErr != nil {
		return errors.Wrapf(closeErr, "close %s", g.Config.Output)
	}
	pterm.Success.Printf("Wrapped %d commands into %s\n", n, g.Config.Output)
	return nil
}

// generate writes the preamble and one wrapper per recognized command.
// Names go out in sorted order so unchanged inputs reproduce the artifact
// byte for byte, timestamp aside.
func (g *Generator) generate(w io.Writer, api map[string]Descriptor, docs DocStore) (int, error) {
	if _, err := io.WriteString(w, renderPreamble(g.Now())); err != nil {
		return 0, errors.Wrap(err, "write preamble")
	}
	names := make([]string, 0, len(api))
	for name := range api {
		names = append(names, name)
	}
	sort.Strings(names)

	wrapped := 0
	for _, name := range names {
		d := api[name]
		spec, ok := BuildWrapperSpec(name, d, docs[name], g.Config.StubDir)
		if !ok {
			g.Log.Warnw("unknown command kind, skipping", "command", name)
			continue
		}
		g.Log.Infow("wrapping command", "command", name, "kind", string(d.Kind))
		if _, err := io.WriteString(w, spec.Render()); err != nil {
			return wrapped, errors.Wrapf(err, "write wrapper %s", name)
		}
		wrapped++
	}
	return wrapped, nil
}
