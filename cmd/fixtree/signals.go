//go:build !windows

package main

import (
	"os"
	"os/signal"
	"syscall"
)

// termsigs contains the signals indicating termination of the program.
var termsigs = []os.Signal{
	syscall.SIGHUP,
	syscall.SIGINT,
	syscall.SIGQUIT,
	syscall.SIGPIPE,
	syscall.SIGTERM,
}

// signalHandler removes the temporary file tmp if a termination signal is
// received and exits the program. The returned quit channel must be closed
// to terminate the handler go routine.
func signalHandler(tmp string) chan<- struct{} {
	quit := make(chan struct{})
	sigch := make(chan os.Signal, 1)
	signal.Notify(sigch, termsigs...)
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
