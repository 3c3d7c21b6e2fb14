//go:build !tinygo

package main

import (
	"os"

	"statusled-go/services/console"
)

const (
	deviceID  = "host"
	bootDelay = 0
)

func consolePort() console.Port { return console.NewStreamPort(os.Stdin, os.Stdout) }

func halt() { os.Exit(1) }
