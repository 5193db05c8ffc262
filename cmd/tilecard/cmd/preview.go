package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/go-drift/tilecard/internal/ctxlog"
	"github.com/go-drift/tilecard/pkg/action"
	"github.com/go-drift/tilecard/pkg/hass"
	"github.com/go-drift/tilecard/pkg/preview"
	"github.com/go-drift/tilecard/pkg/tile"
)

func init() {
	RegisterCommand(&Command{
		Name:  "preview",
		Short: "Preview a card interactively",
		Long: `Draw a card in the terminal and try its gestures.

Keys:
  left/right, tab   select a tile
  enter, space      tap
  H                 hold
  D                 double tap
  r                 reload the state snapshot
  q, ctrl+c         quit

Actions are not performed; the last dispatched request is shown below
the card.`,
		Usage: "tilecard preview [card] [--states FILE] [--vars FILE] [--theme light|dark]",
		Run:   runPreview,
	})
}

func runPreview(ctx context.Context, args []string) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("preview needs an interactive terminal (try: tilecard render --format text)")
	}
	opts, err := parseCardArgs(args)
	if err != nil {
		return err
	}
	s, err := load(ctx, opts)
	if err != nil {
		return err
	}
	m := newPreviewModel(ctx, s, opts.states)
	_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}

// previewModel is the bubbletea model of the preview command.
type previewModel struct {
	ctx        context.Context
	session    *session
	statesPath string
	renderer   *preview.Renderer
	recorder   *action.Recorder

	tiles    []*tile.Tile
	selected int
	width    int
	status   string
}

func newPreviewModel(ctx context.Context, s *session, statesPath string) *previewModel {
	m := &previewModel{
		ctx:        ctx,
		session:    s,
		statesPath: statesPath,
		renderer:   preview.New(s.palette),
		recorder:   &action.Recorder{},
	}
	m.rerender()
	return m
}

func (m *previewModel) rerender() {
	env := m.session.env()
	env.Dispatcher = action.DispatcherFunc(func(ctx context.Context, req action.Request) error {
		ctxlog.FromContext(ctx).Debug("dispatch", "gesture", req.Gesture.String(), "action", req.Action.Action)
		return m.recorder.Dispatch(ctx, req)
	})
	m.tiles = tile.RenderAll(m.session.card.Tiles, env)
	if m.selected >= len(m.tiles) {
		m.selected = max(0, len(m.tiles)-1)
	}
}

func (m *previewModel) Init() tea.Cmd {
	return nil
}

func (m *previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *previewModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "right", "tab", "l":
		if len(m.tiles) > 0 {
			m.selected = (m.selected + 1) % len(m.tiles)
		}
	case "left", "shift+tab", "h":
		if len(m.tiles) > 0 {
			m.selected = (m.selected + len(m.tiles) - 1) % len(m.tiles)
		}
	case "enter", " ":
		m.fire(action.Tap)
	case "H":
		m.fire(action.Hold)
	case "D":
		m.fire(action.DoubleTap)
	case "r":
		m.reload()
	}
	return m, nil
}

func (m *previewModel) fire(g action.Gesture) {
	if len(m.tiles) == 0 {
		return
	}
	t := m.tiles[m.selected]
	before := len(m.recorder.Requests())
	if err := t.Handle(m.ctx, g); err != nil {
		m.status = fmt.Sprintf("%s failed: %v", g, err)
		return
	}
	req, ok := m.recorder.Last()
	if !ok || len(m.recorder.Requests()) == before {
		m.status = fmt.Sprintf("%s: no action", g)
		return
	}
	m.status = describeRequest(req)
}

func (m *previewModel) reload() {
	if m.statesPath == "" {
		m.status = "no state snapshot to reload"
		return
	}
	store, err := hass.LoadStates(m.statesPath)
	if err != nil {
		m.status = fmt.Sprintf("reload failed: %v", err)
		return
	}
	m.session.store.Replace(store)
	m.rerender()
	m.status = fmt.Sprintf("reloaded %d entities", store.Len())
}

func (m *previewModel) View() string {
	if len(m.tiles) == 0 {
		return "card has no tiles (q to quit)\n"
	}
	var sb strings.Builder
	sb.WriteString(m.renderer.Board(m.tiles, m.width, m.selected))
	sb.WriteString("\n\n")
	if m.status != "" {
		sb.WriteString(m.status)
		sb.WriteString("\n")
	}
	sb.WriteString("←/→ select · enter tap · H hold · D double tap · r reload · q quit\n")
	return sb.String()
}

func describeRequest(req action.Request) string {
	parts := []string{req.Gesture.String(), "→", req.Action.Action}
	if req.Entity != "" {
		parts = append(parts, req.Entity)
	}
	if req.Action.Service != "" {
		parts = append(parts, "service="+req.Action.Service)
	}
	if req.Action.NavigationPath != "" {
		parts = append(parts, "path="+req.Action.NavigationPath)
	}
	if req.Action.URL != "" {
		parts = append(parts, "url="+req.Action.URL)
	}
	return strings.Join(parts, " ")
}
