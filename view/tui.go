package view

import (
	"context"
	"fmt"
	"sync"

	"github.com/jroimartin/gocui"
	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

const (
	boardView  = "board"
	statusView = "status"
	helpView   = "help"

	statusHeight = 2
)

// TUI shows the board in a full screen terminal UI. Ctrl+C or q quits.
type TUI struct {
	g        *gocui.Gui
	renderer *model.TerminalRenderer
	stats    *utils.Stats

	// stopped is closed once the UI loop has exited
	stopped chan struct{}

	mu       sync.Mutex
	frame    string
	status   string
	finished bool
}

// NewTUI takes over the terminal. Close must be called to restore it.
func NewTUI(renderer *model.TerminalRenderer, stats *utils.Stats) (*TUI, error) {
	g, err := gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		return nil, errors.Wrap(err, "[NewTUI] failed to open terminal")
	}

	t := &TUI{
		g:        g,
		renderer: renderer,
		stats:    stats,
		stopped:  make(chan struct{}),
	}
	g.SetManagerFunc(t.layout)

	for _, key := range []interface{}{gocui.KeyCtrlC, 'q'} {
		if err = g.SetKeybinding("", key, gocui.ModNone, t.quit); err != nil {
			g.Close()
			return nil, errors.Wrap(err, "[NewTUI] failed to bind keys")
		}
	}
	return t, nil
}

// Display renders the generation now and hands the text to the UI loop,
// so the grid can change as soon as Display returns
func (t *TUI) Display(g *model.Grid) error {
	frame, status := t.renderer.Render(g), StatusLine(g, t.stats)

	t.mu.Lock()
	t.frame, t.status = frame, status
	t.mu.Unlock()

	t.update(t.redraw)
	return nil
}

// Finished keeps the last generation on screen until the user quits
func (t *TUI) Finished() {
	t.mu.Lock()
	t.finished = true
	t.mu.Unlock()

	t.update(t.redraw)
}

// Run blocks in the UI loop until the user quits or ctx is done, then calls cancel
func (t *TUI) Run(ctx context.Context, cancel context.CancelFunc) error {
	defer cancel()
	defer close(t.stopped)

	go func() {
		select {
		case <-ctx.Done():
			t.update(func(*gocui.Gui) error { return gocui.ErrQuit })
		case <-t.stopped:
		}
	}()

	if err := t.g.MainLoop(); err != nil && err != gocui.ErrQuit {
		return errors.Wrap(err, "[Run] terminal ui failed")
	}
	return nil
}

// Close restores the terminal
func (t *TUI) Close() {
	t.g.Close()
}

// update hands f to the UI loop. Nothing reads the queue once the loop has
// exited, so later updates are dropped.
func (t *TUI) update(f func(*gocui.Gui) error) {
	select {
	case <-t.stopped:
		return
	default:
	}
	t.g.Update(f)
}

func (t *TUI) quit(_ *gocui.Gui, _ *gocui.View) error {
	return gocui.ErrQuit
}

func (t *TUI) layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()

	if v, err := g.SetView(boardView, 0, 0, maxX-1, maxY-statusHeight-3); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = "Board"
		v.Frame = true
	}

	if v, err := g.SetView(statusView, 0, maxY-statusHeight-2, maxX-1, maxY-2); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = "Status"
		v.Frame = true
	}

	if v, err := g.SetView(helpView, -1, maxY-2, maxX, maxY); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Frame = false
		fmt.Fprint(v, "KEYBINDINGS: "+aurora.Green("^C").String()+", "+aurora.Green("Q").String()+": Exit")
	}

	return t.redraw(g)
}

func (t *TUI) redraw(g *gocui.Gui) error {
	frame, status := t.text()

	if v, err := g.View(boardView); err == nil {
		v.Clear()
		fmt.Fprint(v, frame)
	}
	if v, err := g.View(statusView); err == nil {
		v.Clear()
		fmt.Fprint(v, " "+status)
	}
	return nil
}

// text returns the board and status pane contents
func (t *TUI) text() (frame, status string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	status = t.status
	if t.finished {
		status += " | Finished, press q to exit"
	}
	return t.frame, status
}
