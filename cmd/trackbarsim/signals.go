package main

import (
	"os"
	"os/signal"
	"syscall"
)

func initCatchSignals(f func(os.Signal)) {
	ch := make(chan os.Signal, 1)
	go func() {
		for sig := range ch {
			f(sig)
		}
	}()
	signal.Notify(ch,
		os.Interrupt, // ctrl+c
		syscall.SIGHUP,
		syscall.SIGTERM)
}
