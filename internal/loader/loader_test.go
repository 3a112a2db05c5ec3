package loader

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/specialistvlad/jspcompile/internal/ctxlog"
	"github.com/specialistvlad/jspcompile/internal/diag"
	"github.com/specialistvlad/jspcompile/internal/grammar"
	"github.com/specialistvlad/jspcompile/internal/inmemorytopology"
	"github.com/specialistvlad/jspcompile/internal/node"
	"github.com/specialistvlad/jspcompile/internal/pattern"
	"github.com/specialistvlad/jspcompile/internal/statemachine"
	"github.com/specialistvlad/jspcompile/internal/topologystore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testContext returns a context whose logger writes to the returned buffer.
func testContext(t *testing.T) (context.Context, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return ctxlog.WithLogger(context.Background(), logger), &buf
}

func load(t *testing.T, src string, opts ...Option) (*Loader, *inmemorytopology.Store, error) {
	t.Helper()
	ctx, _ := testContext(t)
	store := inmemorytopology.New()
	l := New(ctx, store, opts...)
	return l, store, l.Load(ctx, strings.NewReader(src))
}

func requireLineError(t *testing.T, err error) *diag.LineError {
	t.Helper()
	require.Error(t, err)
	var lineErr *diag.LineError
	require.True(t, errors.As(err, &lineErr), "expected *diag.LineError, got %T", err)
	return lineErr
}

func TestLoad_SelfLoop(t *testing.T) {
	src := "[regex]\nnum = \"[0-9]+\"\n[nodes]\nshot = $num\n[graph]\nshot -> shot\n"
	l, store, err := load(t, src)
	require.NoError(t, err)
	ctx := context.Background()

	assert.Equal(t, statemachine.Done, l.State())
	assert.Equal(t, 6, l.Lines())

	nodes := store.Nodes(ctx)
	require.Len(t, nodes, 2)
	assert.Equal(t, node.Root, nodes[0].Kind)

	shot := nodes[1]
	assert.Equal(t, "shot", shot.Name)
	assert.Equal(t, "[0-9]+", shot.Display())
	assert.Same(t, l.Patterns()["num"], shot.Matcher)
	assert.True(t, shot.Accepts("0042"))
	assert.False(t, shot.Accepts("sh010"))

	h := l.Nodes()["shot"]
	assert.Equal(t, []topologystore.Edge{{From: h, To: h}}, store.Edges(ctx))
}

func TestLoad_MissingRegexHeader(t *testing.T) {
	l, _, err := load(t, "[nodes]\nrd\n")

	lineErr := requireLineError(t, err)
	assert.Equal(t, 1, lineErr.Line)
	assert.Equal(t, "[nodes]", lineErr.Text)
	assert.Equal(t, statemachine.Start, lineErr.State)

	var transErr *statemachine.InvalidTransitionError
	require.True(t, errors.As(err, &transErr))
	assert.Equal(t, statemachine.Start, transErr.From)
	assert.Equal(t, statemachine.NodeSection, transErr.To)
	assert.Equal(t, statemachine.Error, l.State())
	assert.Equal(t, 1, l.Lines())
}

func TestLoad_UndefinedEdgeTarget(t *testing.T) {
	_, store, err := load(t, "[regex]\n[nodes]\na\nb\n[graph]\na -> c\n")

	lineErr := requireLineError(t, err)
	assert.Equal(t, 6, lineErr.Line)
	assert.Equal(t, "a -> c", lineErr.Text)
	assert.Equal(t, statemachine.EdgeSection, lineErr.State)

	var symErr *SymbolLookupError
	require.True(t, errors.As(err, &symErr))
	assert.Equal(t, "c", symErr.Name)

	// Nodes added before the failure stay in the store.
	assert.Len(t, store.Nodes(context.Background()), 3)
	assert.Empty(t, store.Edges(context.Background()))
}

func TestLoad_GrammarErrorOnFirstLine(t *testing.T) {
	l, _, err := load(t, `foo = "unterminated`)

	lineErr := requireLineError(t, err)
	assert.Equal(t, 1, lineErr.Line)
	assert.Equal(t, `foo = "unterminated`, lineErr.Text)

	var syntaxErr *grammar.SyntaxError
	require.True(t, errors.As(err, &syntaxErr))
	assert.Equal(t, "start", syntaxErr.Grammar)
	assert.Equal(t, statemachine.Error, l.State())
}

func TestLoad_EmptyInput(t *testing.T) {
	l, store, err := load(t, "")
	require.NoError(t, err)

	assert.Equal(t, statemachine.Start, l.State())
	assert.Equal(t, 0, l.Lines())
	assert.Len(t, store.Nodes(context.Background()), 1)
	assert.Equal(t, map[string]topologystore.Handle{"root": 0}, l.Nodes())
}

func TestLoad_TruncatedInputIsLenientByDefault(t *testing.T) {
	l, _, err := load(t, "[regex]\n[nodes]\na\n")
	require.NoError(t, err)
	assert.Equal(t, statemachine.NodeSection, l.State())
}

func TestLoad_Strict(t *testing.T) {
	testCases := []struct {
		name      string
		src       string
		wantState statemachine.State
		wantLine  int
	}{
		{name: "empty input", src: "", wantState: statemachine.Start, wantLine: 1},
		{name: "stops in regex section", src: "[regex]\nnum = \"[0-9]+\"\n", wantState: statemachine.RegexSection, wantLine: 3},
		{name: "stops in node section", src: "[regex]\n[nodes]\n", wantState: statemachine.NodeSection, wantLine: 3},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := load(t, tc.src, WithStrict(true))

			lineErr := requireLineError(t, err)
			assert.Equal(t, tc.wantLine, lineErr.Line)
			assert.Empty(t, lineErr.Text)

			var incErr *IncompleteError
			require.True(t, errors.As(err, &incErr))
			assert.Equal(t, tc.wantState, incErr.State)
		})
	}

	t.Run("complete input", func(t *testing.T) {
		l, _, err := load(t, "[regex]\n[nodes]\n[graph]\n", WithStrict(true))
		require.NoError(t, err)
		assert.Equal(t, statemachine.Done, l.State())
	})
}

func TestLoad_ExplicitRootEdge(t *testing.T) {
	l, store, err := load(t, "[regex]\n[nodes]\nshow\n[graph]\nroot -> show\n")
	require.NoError(t, err)

	ctx := context.Background()
	root := l.Nodes()[node.RootName]
	show := l.Nodes()["show"]
	assert.Equal(t, topologystore.Handle(0), root)
	assert.Equal(t, []topologystore.Edge{{From: root, To: show}}, store.Edges(ctx))

	n, ok := store.Node(ctx, root)
	require.True(t, ok)
	assert.Equal(t, node.Root, n.Kind)
}

func TestLoad_RootIsNotWiredAutomatically(t *testing.T) {
	l, store, err := load(t, "[regex]\n[nodes]\na\nb\n[graph]\na -> b\n")
	require.NoError(t, err)

	ctx := context.Background()
	assert.Equal(t, []topologystore.Edge{{From: l.Nodes()["a"], To: l.Nodes()["b"]}}, store.Edges(ctx))

	children, err := store.Children(ctx, l.Nodes()[node.RootName])
	require.NoError(t, err)
	assert.Empty(t, children)
}

func TestLoad_RootOverride(t *testing.T) {
	ctx, logs := testContext(t)
	store := inmemorytopology.New()
	l := New(ctx, store)
	err := l.Load(ctx, strings.NewReader("[regex]\n[nodes]\nroot = projects\na\n[graph]\nroot -> a\n"))
	require.NoError(t, err)

	root := l.Nodes()[node.RootName]
	assert.Equal(t, topologystore.Handle(1), root)

	n, _ := store.Node(ctx, root)
	assert.Equal(t, node.Directory, n.Kind)
	assert.Equal(t, "projects", n.Label)
	assert.Equal(t, []topologystore.Edge{{From: root, To: l.Nodes()["a"]}}, store.Edges(ctx))
	assert.Contains(t, logs.String(), "Node redefined")
}

func TestLoad_NodeForms(t *testing.T) {
	src := strings.Join([]string{
		"[regex]",
		`lower = "[a-z]+"`,
		`not_tmp = "[a-z]+" "tmp.*"`,
		"[nodes]",
		"plain",
		"rd = RD",
		"ref = $lower",
		`inline = "[0-9]{3}"`,
		`cplx = "[a-z]+" "(foo|bar)"`,
		"guarded = $not_tmp",
		"",
	}, "\n")
	l, store, err := load(t, src)
	require.NoError(t, err)

	byName := func(name string) *node.Node {
		t.Helper()
		n, ok := store.Node(context.Background(), l.Nodes()[name])
		require.True(t, ok)
		return n
	}

	testCases := []struct {
		name    string
		display string
		accept  []string
		reject  []string
	}{
		{name: "plain", display: "plain", accept: []string{"plain"}, reject: []string{"Plain"}},
		{name: "rd", display: "RD", accept: []string{"RD"}, reject: []string{"rd"}},
		{name: "ref", display: "[a-z]+", accept: []string{"abc"}, reject: []string{"abc1"}},
		{name: "inline", display: "[0-9]{3}", accept: []string{"010"}, reject: []string{"0100"}},
		{name: "cplx", display: `"[a-z]+" "(foo|bar)"`, accept: []string{"baz", "foobar"}, reject: []string{"foo", "bar"}},
		{name: "guarded", display: `"[a-z]+" "tmp.*"`, accept: []string{"work"}, reject: []string{"tmpwork"}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			n := byName(tc.name)
			assert.Equal(t, tc.name, n.Name)
			assert.Equal(t, tc.display, n.Display())
			assert.Equal(t, node.Directory, n.Kind)
			for _, s := range tc.accept {
				assert.True(t, n.Accepts(s), "should accept %q", s)
			}
			for _, s := range tc.reject {
				assert.False(t, n.Accepts(s), "should reject %q", s)
			}
		})
	}
}

func TestLoad_MetadataReachesNodes(t *testing.T) {
	src := strings.Join([]string{
		"[regex]",
		`show_re = "[a-z]+"`,
		"[nodes]",
		"show = $show_re [volume, owner: jgerber, perms: 751, varname: JG_SHOW]",
		"rd = RD [perms: 0775]",
		`seq = "[A-Z]+" [owner: fred]`,
		`shot = "[a-z]+" "tmp" [varname: SHOT]`,
		"plain [volume]",
		"bare",
	}, "\n")
	l, store, err := load(t, src)
	require.NoError(t, err)

	testCases := []struct {
		name string
		kind node.EntryKind
		md   node.Metadata
	}{
		{name: "show", kind: node.Volume, md: node.Metadata{Volume: true, Owner: "jgerber", Permissions: "751", EnvVarName: "JG_SHOW"}},
		{name: "rd", kind: node.Directory, md: node.Metadata{Permissions: "0775"}},
		{name: "seq", kind: node.Directory, md: node.Metadata{Owner: "fred"}},
		{name: "shot", kind: node.Directory, md: node.Metadata{EnvVarName: "SHOT"}},
		{name: "plain", kind: node.Volume, md: node.Metadata{Volume: true}},
		{name: "bare", kind: node.Directory},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			n, ok := store.Node(context.Background(), l.Nodes()[tc.name])
			require.True(t, ok)
			assert.Equal(t, tc.kind, n.Kind)
			assert.Equal(t, tc.md, n.Metadata)
		})
	}
}

func TestLoad_EdgeChainOrder(t *testing.T) {
	src := "[regex]\n[nodes]\na\nb\nc\nd\n[graph]\na -> b -> c -> d\nd -> a -> b\n"
	l, store, err := load(t, src)
	require.NoError(t, err)

	h := l.Nodes()
	want := []topologystore.Edge{
		{From: h["a"], To: h["b"]},
		{From: h["b"], To: h["c"]},
		{From: h["c"], To: h["d"]},
		{From: h["d"], To: h["a"]},
		{From: h["a"], To: h["b"]},
	}
	assert.Equal(t, want, store.Edges(context.Background()))
}

func TestLoad_PatternRedefinitionLastWins(t *testing.T) {
	ctx, logs := testContext(t)
	store := inmemorytopology.New()
	l := New(ctx, store)
	src := "[regex]\np = \"a+\"\np = \"b+\"\n[nodes]\nx = $p\n"
	require.NoError(t, l.Load(ctx, strings.NewReader(src)))

	n, _ := store.Node(ctx, l.Nodes()["x"])
	assert.True(t, n.Accepts("bbb"))
	assert.False(t, n.Accepts("aaa"))
	assert.Len(t, l.Patterns(), 1)
	assert.Contains(t, logs.String(), "Pattern redefined")
	assert.Contains(t, logs.String(), "line=3")
}

func TestLoad_NodeRedefinitionLastWins(t *testing.T) {
	l, store, err := load(t, "[regex]\n[nodes]\na = first\na = second\nb\n[graph]\na -> b\n")
	require.NoError(t, err)

	ctx := context.Background()
	// Both vertices exist, the name resolves to the later one.
	assert.Len(t, store.Nodes(ctx), 4)
	a := l.Nodes()["a"]
	n, _ := store.Node(ctx, a)
	assert.Equal(t, "second", n.Label)
	assert.Equal(t, []topologystore.Edge{{From: a, To: l.Nodes()["b"]}}, store.Edges(ctx))
}

func TestLoad_UndefinedPattern(t *testing.T) {
	l, _, err := load(t, "[regex]\n[nodes]\nshot = $missing\n")

	lineErr := requireLineError(t, err)
	assert.Equal(t, 3, lineErr.Line)
	assert.Equal(t, statemachine.NodeSection, lineErr.State)

	var lookupErr *PatternLookupError
	require.True(t, errors.As(err, &lookupErr))
	assert.Equal(t, "missing", lookupErr.Name)
	assert.Equal(t, statemachine.Error, l.State())
}

func TestLoad_InvalidRegex(t *testing.T) {
	testCases := []struct {
		name string
		src  string
		line int
	}{
		{name: "pattern definition", src: "[regex]\nbad = \"[a-z\"\n", line: 2},
		{name: "complex negative half", src: "[regex]\nbad = \"[a-z]+\" \"(foo\"\n", line: 2},
		{name: "inline node pattern", src: "[regex]\n[nodes]\nbad = \"a{2,1}\"\n", line: 3},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			l, _, err := load(t, tc.src)
			lineErr := requireLineError(t, err)
			assert.Equal(t, tc.line, lineErr.Line)

			var compileErr *pattern.CompileError
			require.True(t, errors.As(err, &compileErr))
			assert.Equal(t, statemachine.Error, l.State())
		})
	}
}

func TestLoad_StopsAtFirstError(t *testing.T) {
	l, store, err := load(t, "[regex]\n[nodes]\na\n[graph]\na -> z\n[regex]\n")
	lineErr := requireLineError(t, err)
	assert.Equal(t, 5, lineErr.Line)
	assert.Equal(t, 5, l.Lines())
	assert.Len(t, store.Nodes(context.Background()), 2)
}

func TestLoad_ReaderFailure(t *testing.T) {
	ctx, _ := testContext(t)
	l := New(ctx, inmemorytopology.New())
	boom := errors.New("disk on fire")

	err := l.Load(ctx, iotest.ErrReader(boom))
	lineErr := requireLineError(t, err)
	assert.Equal(t, 1, lineErr.Line)

	var ioErr *IOError
	require.True(t, errors.As(err, &ioErr))
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, statemachine.Error, l.State())
}

func TestLoad_CRLF(t *testing.T) {
	l, store, err := load(t, "[regex]\r\n[nodes]\r\nrd = RD\r\n[graph]\r\nroot -> rd\r\n")
	require.NoError(t, err)
	assert.Equal(t, statemachine.Done, l.State())

	n, _ := store.Node(context.Background(), l.Nodes()["rd"])
	assert.Equal(t, "RD", n.Label)
}

func TestLoad_LogsLineAndState(t *testing.T) {
	ctx, logs := testContext(t)
	l := New(ctx, inmemorytopology.New())
	require.NoError(t, l.Load(ctx, strings.NewReader("[regex]\n[nodes]\nrd = RD\n")))

	out := logs.String()
	assert.Contains(t, out, "line=3 state=NodeSection")
	assert.Contains(t, out, "Node added.")
	assert.Contains(t, out, "Template loaded.")
}

func TestAccessorsReturnCopies(t *testing.T) {
	l, _, err := load(t, "[regex]\np = \"x\"\n")
	require.NoError(t, err)

	l.Nodes()["extra"] = 42
	l.Patterns()["extra"] = nil
	assert.NotContains(t, l.Nodes(), "extra")
	assert.NotContains(t, l.Patterns(), "extra")
}
