package config

import (
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
)

var isShouldShutdown atomic.Bool

// StartListeningForShutdownSignal flips IsShouldShutdown on SIGINT/SIGTERM.
// It does not consume the signal for other listeners.
func StartListeningForShutdownSignal() {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-signals
		isShouldShutdown.Store(true)
		log.Info("Shutdown flag raised")
	}()
}

func IsShouldShutdown() bool {
	return isShouldShutdown.Load()
}
