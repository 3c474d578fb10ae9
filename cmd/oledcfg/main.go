// Oledcfg configures the OLED panels of a VIA-capable split keyboard.
//
// It discovers the keyboard over USB HID, negotiates the VIA protocol
// version, and streams 1-bit bitmaps to the left or right panel through the
// firmware's vendor-extended OLED command.
//
// Usage:
//
//	oledcfg [command] [flags]
//
// See 'oledcfg --help' for available commands.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
