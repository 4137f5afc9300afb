package view

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

// stoppedTUI is a TUI whose UI loop has already exited. It has no terminal,
// so any update reaching gocui would panic.
func stoppedTUI() *TUI {
	t := &TUI{
		renderer: &model.TerminalRenderer{},
		stats:    utils.NewStats(),
		stopped:  make(chan struct{}),
	}
	close(t.stopped)
	return t
}

func TestTUIAfterStop(t *testing.T) {
	Convey("When generations arrive after the UI loop has exited", t, func() {
		tui := stoppedTUI()
		g := model.NewGrid(2)
		g.Set(0, 0, true)

		Convey("They are recorded without reaching the UI loop", func() {
			So(func() { _ = tui.Display(g) }, ShouldNotPanic)
			frame, status := tui.text()
			So(frame, ShouldEqual, "▣ .\n. .\n")
			So(status, ShouldStartWith, "Gen: 0 | Living: 1")
		})

		Convey("Finishing the run only changes the status text", func() {
			So(tui.Display(g), ShouldBeNil)
			So(tui.Finished, ShouldNotPanic)
			_, status := tui.text()
			So(status, ShouldEndWith, "| Finished, press q to exit")
		})
	})
}
