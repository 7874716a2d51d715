// Replays trackbar event scripts: prints the host notifications and writes
// PNG snapshots of the control.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/fatih/color"
	"gopkg.in/natefinch/lumberjack.v2"
)

func main() {
	cfg := &config{}
	flag.StringVar(&cfg.script, "script", "", "script filename, \"-\" for stdin")
	flag.StringVar(&cfg.out, "out", "", "directory for the png snapshots of the \"paint\" command")
	flag.IntVar(&cfg.width, "width", 200, "control width")
	flag.IntVar(&cfg.height, "height", 40, "control height")
	flag.BoolVar(&cfg.echo, "echo", true, "report capture releases back as capture lost (-echo=false never commits drags)")
	flag.BoolVar(&cfg.watch, "watch", false, "rerun the script when the file changes")
	flag.BoolVar(&cfg.dump, "dump", false, "dump the final control state")
	logFile := flag.String("logfile", "", "log to a rotating file")
	noColor := flag.Bool("nocolor", false, "disable colored output")
	flag.Parse()

	log.SetFlags(log.Lshortfile)
	if *logFile != "" {
		lj := &lumberjack.Logger{
			Filename:   *logFile,
			MaxSize:    5, // megabytes
			MaxBackups: 3,
		}
		defer lj.Close()
		log.SetOutput(lj)
		log.SetFlags(log.LstdFlags | log.Lshortfile)
	}
	if *noColor {
		color.NoColor = true
	}

	if cfg.script == "" && flag.NArg() > 0 {
		cfg.script = flag.Arg(0)
	}
	if cfg.script == "" {
		fmt.Fprintln(os.Stderr, "missing script")
		flag.Usage()
		os.Exit(2)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	initCatchSignals(func(sig os.Signal) {
		log.Printf("signal: %v", sig)
		cancel()
	})

	if err := run(ctx, cfg, os.Stdout); err != nil {
		log.Print(err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
