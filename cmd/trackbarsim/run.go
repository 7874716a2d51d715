package main

import (
	"context"
	"fmt"
	"image"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/davecgh/go-spew/spew"
	"github.com/jmigpin/trackbar/trackbar"
	"github.com/jmigpin/trackbar/trackbar/imgsurface"
	"github.com/jmigpin/trackbar/trackbar/tbscript"
	"github.com/jmigpin/trackbar/util/fswatcher"
	"github.com/jmigpin/trackbar/util/imageutil"
)

type config struct {
	script string
	out    string
	width  int
	height int
	echo   bool
	watch  bool
	dump   bool
}

func run(ctx context.Context, cfg *config, stdout io.Writer) error {
	if err := runOnce(ctx, cfg, stdout); err != nil {
		if !cfg.watch {
			return err
		}
		log.Print(err)
		fmt.Fprintln(stdout, err)
	}
	if !cfg.watch {
		return nil
	}
	if cfg.script == "-" {
		return fmt.Errorf("can't watch stdin")
	}
	return watchLoop(ctx, cfg, stdout)
}

func watchLoop(ctx context.Context, cfg *config, stdout io.Writer) error {
	w, err := fswatcher.NewFileWatcher()
	if err != nil {
		return err
	}
	defer w.Close()
	if err := w.Add(cfg.script); err != nil {
		return err
	}
	log.Printf("watching %v", cfg.script)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events():
			if !ok {
				return nil
			}
			switch t := ev.(type) {
			case error:
				log.Print(t)
			case *fswatcher.Event:
				log.Printf("%v", t)
				fmt.Fprintf(stdout, "--- %v\n", t)
				if err := runOnce(ctx, cfg, stdout); err != nil {
					log.Print(err)
					fmt.Fprintln(stdout, err)
				}
			}
		}
	}
}

func runOnce(ctx context.Context, cfg *config, stdout io.Writer) error {
	rd, err := openScript(cfg.script)
	if err != nil {
		return err
	}
	defer rd.Close()

	cw := &colorWriter{w: stdout}
	r := tbscript.NewRunner(cw)
	r.Bounds = image.Rect(0, 0, cfg.width, cfg.height)
	r.EchoCapture = cfg.echo

	tip, err := imgsurface.NewTooltip(11)
	if err != nil {
		return err
	}
	r.Tooltip = tip

	if cfg.out != "" {
		if err := os.MkdirAll(cfg.out, 0o755); err != nil {
			return err
		}
		n := 0
		r.OnPaint = func(name string, tb *trackbar.Trackbar) error {
			n++
			filename := filepath.Join(cfg.out, fmt.Sprintf("%03d_%s.png", n, name))
			return writeSnapshot(filename, tb, tip)
		}
	}

	if err := r.Run(ctx, rd); err != nil {
		return err
	}
	if cfg.dump && r.Tb != nil {
		spew.Fdump(stdout, r.Tb.State())
	}
	return nil
}

func openScript(filename string) (io.ReadCloser, error) {
	if filename == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(filename)
}

// Image covers the control bounds and the tooltip box.
func writeSnapshot(filename string, tb *trackbar.Trackbar, tip *imgsurface.Tooltip) error {
	r := tb.Bounds().Union(tip.Bounds())
	img := image.NewRGBA(r)
	s := imgsurface.NewSurface(img)
	s.Clear(r)
	tb.Paint(s)
	tip.Draw(img)

	if err := imageutil.SavePng(img, filename); err != nil {
		return err
	}
	log.Printf("wrote %v", filename)
	return nil
}
