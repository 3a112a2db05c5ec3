package loader

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"strings"

	"github.com/specialistvlad/jspcompile/internal/ctxlog"
	"github.com/specialistvlad/jspcompile/internal/diag"
	"github.com/specialistvlad/jspcompile/internal/grammar"
	"github.com/specialistvlad/jspcompile/internal/node"
	"github.com/specialistvlad/jspcompile/internal/pattern"
	"github.com/specialistvlad/jspcompile/internal/statemachine"
	"github.com/specialistvlad/jspcompile/internal/topologystore"
)

// maxLineSize bounds a single template line.
const maxLineSize = 1 << 20

// Loader resolves template lines into nodes and edges of a store. A Loader
// owns its symbol tables and is meant for a single input.
type Loader struct {
	store    topologystore.Store
	machine  *statemachine.Machine
	nodes    map[string]topologystore.Handle
	patterns map[string]pattern.Matcher
	strict   bool
	lines    int
}

// Option configures a Loader.
type Option func(*Loader)

// WithStrict makes Load fail with an IncompleteError when the input ends
// before the [graph] section.
func WithStrict(strict bool) Option {
	return func(l *Loader) {
		l.strict = strict
	}
}

// New creates a loader that writes into store and adds the implicit root node.
func New(ctx context.Context, store topologystore.Store, opts ...Option) *Loader {
	l := &Loader{
		store:    store,
		machine:  statemachine.New(),
		nodes:    make(map[string]topologystore.Handle),
		patterns: make(map[string]pattern.Matcher),
	}
	for _, opt := range opts {
		opt(l)
	}

	h := store.AddNode(ctx, node.NewRoot())
	l.nodes[node.RootName] = h
	ctxlog.FromContext(ctx).Debug("Implicit root node added.", "handle", h.String())
	return l
}

// lineContext is the position of the line being resolved.
type lineContext struct {
	number int
	text   string
}

func (lc lineContext) wrap(state statemachine.State, err error) error {
	return &diag.LineError{Line: lc.number, Text: lc.text, State: state, Err: err}
}

// Load reads r to the end. Every returned error is a *diag.LineError.
func (l *Loader) Load(ctx context.Context, r io.Reader) error {
	logger := ctxlog.FromContext(ctx)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for sc.Scan() {
		l.lines++
		lc := lineContext{number: l.lines, text: strings.TrimSuffix(sc.Text(), "\r")}
		if err := l.processLine(ctx, lc); err != nil {
			return err
		}
	}

	next := lineContext{number: l.lines + 1}
	if err := sc.Err(); err != nil {
		state := l.machine.State()
		l.machine.Fail()
		return next.wrap(state, &IOError{Err: err})
	}

	final := l.machine.Finish()
	if l.strict && final != statemachine.Done {
		return next.wrap(final, &IncompleteError{State: final})
	}

	logger.Info("Template loaded.",
		"lines", l.lines,
		"state", final.String(),
		"nodes", len(l.nodes),
		"patterns", len(l.patterns),
	)
	return nil
}

func (l *Loader) processLine(ctx context.Context, lc lineContext) error {
	state := l.machine.State()
	logger := ctxlog.FromContext(ctx).With("line", lc.number, "state", state.String())

	rec, err := l.machine.Parse(lc.text)
	if err != nil {
		return lc.wrap(state, err)
	}
	logger.Log(ctx, ctxlog.LevelTrace, "Record parsed.", "record", fmt.Sprintf("%T", rec))
	if err := l.apply(ctx, logger, rec); err != nil {
		l.machine.Fail()
		return lc.wrap(state, err)
	}
	return nil
}

func (l *Loader) apply(ctx context.Context, logger *slog.Logger, rec grammar.Record) error {
	switch r := rec.(type) {
	case grammar.Header:
		logger.Info("Section started.", "section", r.Name, "next_state", l.machine.State().String())
		return nil
	case grammar.Comment:
		logger.Debug("Comment.", "text", r.Text)
		return nil
	case grammar.Empty:
		return nil

	case grammar.SimplePattern:
		m, err := pattern.Compile(r.Pattern)
		if err != nil {
			return err
		}
		l.definePattern(logger, r.Name, m)
		return nil
	case grammar.ComplexPattern:
		m, err := pattern.CompileComplex(r.Positive, r.Negative)
		if err != nil {
			return err
		}
		l.definePattern(logger, r.Name, m)
		return nil

	case grammar.SimpleNode:
		l.defineNode(ctx, logger, node.NewLabeled(r.Name, r.Name, r.Metadata))
		return nil
	case grammar.PairNode:
		l.defineNode(ctx, logger, node.NewLabeled(r.Name, r.Value, r.Metadata))
		return nil
	case grammar.PatternRefNode:
		m, ok := l.patterns[r.Pattern]
		if !ok {
			return &PatternLookupError{Name: r.Pattern}
		}
		l.defineNode(ctx, logger, node.NewMatching(r.Name, m, r.Metadata))
		return nil
	case grammar.InlinePatternNode:
		m, err := pattern.Compile(r.Pattern)
		if err != nil {
			return err
		}
		l.defineNode(ctx, logger, node.NewMatching(r.Name, m, r.Metadata))
		return nil
	case grammar.InlineComplexNode:
		m, err := pattern.CompileComplex(r.Positive, r.Negative)
		if err != nil {
			return err
		}
		l.defineNode(ctx, logger, node.NewMatching(r.Name, m, r.Metadata))
		return nil

	case grammar.EdgeChain:
		for _, e := range r.Edges {
			if err := l.addEdge(ctx, logger, e); err != nil {
				return err
			}
		}
		return nil

	default:
		return fmt.Errorf("unhandled record type %T", rec)
	}
}

func (l *Loader) definePattern(logger *slog.Logger, name string, m pattern.Matcher) {
	if prev, ok := l.patterns[name]; ok {
		logger.Warn("Pattern redefined, the earlier definition is replaced.",
			"pattern", name, "previous", prev.String(), "current", m.String())
	}
	l.patterns[name] = m
	logger.Debug("Pattern defined.", "pattern", name, "source", m.String())
}

func (l *Loader) defineNode(ctx context.Context, logger *slog.Logger, n *node.Node) {
	h := l.store.AddNode(ctx, n)
	if prev, ok := l.nodes[n.Name]; ok {
		logger.Warn("Node redefined, the name now refers to the new node.",
			"node", n.Name, "previous", prev.String(), "current", h.String())
	}
	l.nodes[n.Name] = h
	logger.Debug("Node added.", "node", n.Name, "handle", h.String(), "kind", n.Kind.String(), "display", n.Display())
}

func (l *Loader) addEdge(ctx context.Context, logger *slog.Logger, e grammar.Edge) error {
	from, ok := l.nodes[e.From]
	if !ok {
		return &SymbolLookupError{Name: e.From}
	}
	to, ok := l.nodes[e.To]
	if !ok {
		return &SymbolLookupError{Name: e.To}
	}
	if err := l.store.AddEdge(ctx, from, to); err != nil {
		return fmt.Errorf("adding edge %s -> %s: %w", e.From, e.To, err)
	}
	logger.Debug("Edge added.", "from", e.From, "to", e.To)
	return nil
}

// State returns the state the machine stopped in.
func (l *Loader) State() statemachine.State {
	return l.machine.State()
}

// Nodes returns a copy of the node symbol table.
func (l *Loader) Nodes() map[string]topologystore.Handle {
	return maps.Clone(l.nodes)
}

// Patterns returns a copy of the pattern symbol table.
func (l *Loader) Patterns() map[string]pattern.Matcher {
	return maps.Clone(l.patterns)
}

// Lines returns the number of lines read so far.
func (l *Loader) Lines() int {
	return l.lines
}
