// Browser is a small web browser shell on devdraw: one window, one
// tab, navigation history, and bookmarks. Page handling is a stub
// until a page engine is plugged in.
//
// Configuration comes from BROWSER_* environment variables; see the
// config package. With BROWSER_WINFS_ADDR set, the running windows are
// also served as a 9P filesystem on that address.
package main

import (
	"fmt"
	"net"
	"os"

	"go.uber.org/zap"

	"github.com/elizafairlady/go-libgui/browser"
	"github.com/elizafairlady/go-libgui/config"
	"github.com/elizafairlady/go-libgui/display"
	"github.com/elizafairlady/go-libgui/display/devdraw"
	"github.com/elizafairlady/go-libgui/eventloop"
	"github.com/elizafairlady/go-libgui/geom"
	"github.com/elizafairlady/go-libgui/logging"
	"github.com/elizafairlady/go-libgui/window"
	"github.com/elizafairlady/go-libgui/winfs"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "browser:", err)
		os.Exit(1)
	}
	log, err := logging.New(cfg.LogLevel, cfg.LogDev)
	if err != nil {
		fmt.Fprintln(os.Stderr, "browser:", err)
		os.Exit(1)
	}
	defer log.Sync()

	if err := run(cfg, log); err != nil {
		log.Fatal("browser failed", zap.Error(err))
	}
}

func run(cfg *config.Config, log *zap.Logger) error {
	backend := devdraw.New(cfg.Font, log)
	loop := eventloop.New()
	app := window.NewApp(backend, loop, log)

	bookmarks, err := browser.LoadBookmarks(cfg.Bookmarks)
	if err != nil {
		return err
	}

	win, err := app.CreateWindow(window.Options{
		Rect:       geom.Rect(0, 0, cfg.WindowWidth, cfg.WindowHeight),
		Title:      "Browser",
		Background: display.White,
	})
	if err != nil {
		return err
	}

	tab := browser.NewTab(app, browser.NewStubPageView(), bookmarks, cfg.HomeURL, log)
	tab.OnTitleChange = func(title string) {
		if err := win.SetTitle(title + " - Browser"); err != nil {
			log.Debug("retitle failed", zap.Error(err))
		}
	}
	win.SetMainWidget(tab)
	win.SetFocusedWidget(tab)
	if err := win.Show(); err != nil {
		return err
	}
	tab.GoHome()

	if cfg.WinFSAddr != "" {
		ln, err := net.Listen("tcp", cfg.WinFSAddr)
		if err != nil {
			return err
		}
		log.Info("winfs listening", zap.String("addr", cfg.WinFSAddr))
		go func() {
			if err := winfs.New(app.Registry, loop, log).Serve(ln); err != nil {
				log.Warn("winfs stopped", zap.Error(err))
			}
		}()
	}

	// The UI loop: raw display events and deferred posts, one
	// goroutine, until the last window closes.
	for {
		select {
		case raw := <-backend.Events():
			app.Dispatch(raw)
		case <-loop.Wake():
			loop.DispatchPending()
		}
		loop.DispatchPending()
		if app.Registry.Len() == 0 {
			log.Info("all windows closed")
			return nil
		}
	}
}
