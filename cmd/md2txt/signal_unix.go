//go:build !windows

package main

import (
	"os"
	"syscall"
)

// shutdownSignals cancel an in-flight batch.
var shutdownSignals = []os.Signal{os.Interrupt, syscall.SIGTERM}
