//go:build !windows

package main

import (
	"os"
	"syscall"
)

// terminationSignals trigger a graceful shutdown.
var terminationSignals = []os.Signal{os.Interrupt, syscall.SIGTERM}
