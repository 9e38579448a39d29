//go:build tinygo

package main

import (
	"inkstatus/app"
	"inkstatus/hal"
)

func main() {
	app.Run(hal.New())
}
