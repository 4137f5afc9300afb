package server

import (
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	. "github.com/smartystreets/goconvey/convey"

	"github.com/sheikhrachel/go-life/model"
)

func glider() *model.Grid {
	g := model.NewGrid(6)
	g.Set(0, 1, true)
	g.Set(1, 2, true)
	g.Set(2, 0, true)
	g.Set(2, 1, true)
	g.Set(2, 2, true)
	return g
}

func getBoard(url string) (Frame, error) {
	var f Frame
	resp, err := http.Get(url + "/board")
	if err != nil {
		return f, err
	}
	defer resp.Body.Close()
	err = json.NewDecoder(resp.Body).Decode(&f)
	return f, err
}

func TestHub(t *testing.T) {
	Convey("Given a hub behind a test server", t, func() {
		hub := NewHub()
		srv := httptest.NewServer(hub.Handler())
		defer srv.Close()

		Convey("The board is empty before the first generation", func() {
			f, err := getBoard(srv.URL)
			So(err, ShouldBeNil)
			So(f.Side, ShouldEqual, 0)
			So(f.Cells, ShouldBeEmpty)
		})

		Convey("The board endpoint serves the latest generation", func() {
			g := glider()
			So(hub.Display(g), ShouldBeNil)
			So(hub.Display(g), ShouldBeNil)

			f, err := getBoard(srv.URL)
			So(err, ShouldBeNil)
			So(f.Generation, ShouldEqual, 1)
			So(f.Side, ShouldEqual, 6)
			So(f.Living, ShouldEqual, 5)
			So(model.GridFromMatrix(f.Cells).Equal(g), ShouldBeTrue)
		})

		Convey("The index page is served", func() {
			resp, err := http.Get(srv.URL + "/")
			So(err, ShouldBeNil)
			defer resp.Body.Close()
			body, err := io.ReadAll(resp.Body)
			So(err, ShouldBeNil)
			So(string(body), ShouldContainSubstring, `<pre id="board">`)
		})

		Convey("Websocket clients receive every new generation", func() {
			g := glider()
			So(hub.Display(g), ShouldBeNil)

			url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
			ws, _, err := websocket.DefaultDialer.Dial(url, nil)
			So(err, ShouldBeNil)
			defer ws.Close()
			_ = ws.SetReadDeadline(time.Now().Add(5 * time.Second))

			var first Frame
			So(ws.ReadJSON(&first), ShouldBeNil)
			So(first.Generation, ShouldEqual, 0)

			g.Set(5, 5, true)
			So(hub.Display(g), ShouldBeNil)

			var second Frame
			So(ws.ReadJSON(&second), ShouldBeNil)
			So(second.Generation, ShouldEqual, 1)
			So(second.Cells[5][5], ShouldBeTrue)
			So(second.Living, ShouldEqual, 6)
		})
	})
}

func TestServe(t *testing.T) {
	Convey("When the hub serves until its context ends", t, func() {
		ln, err := net.Listen("tcp", "127.0.0.1:0")
		So(err, ShouldBeNil)
		addr := ln.Addr().String()
		So(ln.Close(), ShouldBeNil)

		hub := NewHub()
		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() { done <- hub.Serve(ctx, addr) }()

		var resp *http.Response
		for n := 0; n < 50; n++ {
			if resp, err = http.Get("http://" + addr + "/board"); err == nil {
				break
			}
			time.Sleep(20 * time.Millisecond)
		}
		So(err, ShouldBeNil)
		resp.Body.Close()

		cancel()
		select {
		case err = <-done:
			So(err, ShouldBeNil)
		case <-time.After(5 * time.Second):
			So("serve did not return", ShouldBeEmpty)
		}
	})

	Convey("When the address cannot be used Serve fails", t, func() {
		err := NewHub().Serve(context.Background(), "256.0.0.1:bad")
		So(err, ShouldNotBeNil)
	})
}

func TestOffer(t *testing.T) {
	Convey("When a client falls behind only the newest frame is kept", t, func() {
		c := &client{send: make(chan Frame, 1)}
		c.offer(Frame{Generation: 1})
		c.offer(Frame{Generation: 2})
		c.offer(Frame{Generation: 3})

		f := <-c.send
		So(f.Generation, ShouldEqual, 3)
		So(len(c.send), ShouldEqual, 0)
	})
}
