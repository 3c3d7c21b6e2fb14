package main

import (
	"context"
	"time"

	"statusled-go/bus"
	"statusled-go/services/config"
	"statusled-go/services/console"
	"statusled-go/services/led"
)

func main() {
	// Allow USB CDC to enumerate before we print.
	time.Sleep(bootDelay)
	println("Info: statusled boot, device", deviceID)

	ctx := context.WithValue(context.Background(), config.CtxDeviceKey, deviceID)
	b := bus.NewBus(8)

	settings := config.NewSettings()
	settings.Start(ctx, b.NewConnection("settings"))
	config.NewConfigService().Start(ctx, b.NewConnection("config"))

	con := console.New(consolePort(), b.NewConnection("console"))
	go con.Run(ctx)

	if err := led.Run(ctx, b.NewConnection("led"), settings, nil); err != nil {
		println("Error: led:", err.Error())
		halt()
	}
}
