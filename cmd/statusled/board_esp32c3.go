//go:build esp32c3

package main

import (
	"os"
	"time"

	"statusled-go/services/console"
)

const (
	deviceID  = "esp32c3"
	bootDelay = 2 * time.Second
)

// The C3's USB serial/JTAG is stdio.
func consolePort() console.Port { return console.NewStreamPort(os.Stdin, os.Stdout) }

func halt() {
	for {
		time.Sleep(time.Hour)
	}
}
