package main

import (
	"os"
	"os/signal"
)

func signalHandler(tmp string) chan<- struct{} {
	quit := make(chan struct{})
	sigch := make(chan os.Signal, 1)
	signal.Notify(sigch, os.Interrupt)
	go func() {
		select {
		case <-quit:
			signal.Stop(sigch)
			return
		case <-sigch:
			os.Remove(tmp)
			os.Exit(7)
		}
	}()
	return quit
}
