//go:build rp2040 || rp2350

package main

import (
	"machine"
	"time"

	"statusled-go/services/console"

	"github.com/jangala-dev/tinygo-uartx/uartx"
)

const (
	deviceID  = "pico"
	bootDelay = 2 * time.Second
)

// Console on UART0, GP0/GP1.
func consolePort() console.Port {
	u := uartx.UART0
	_ = u.Configure(uartx.UARTConfig{
		BaudRate: 115200,
		TX:       machine.GPIO0,
		RX:       machine.GPIO1,
	})
	return u
}

func halt() {
	for {
		time.Sleep(time.Hour)
	}
}
