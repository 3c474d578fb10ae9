// Package via implements the VIA configurator transport spoken by QMK
// keyboards over their raw HID interface: fixed 32-byte reports with a
// leading report ID and a command byte.
//
// Report layout (all reports are exactly 32 bytes):
//
//	offset 0      report ID, always 0x00
//	offset 1      command
//	offset 2..31  command arguments, zero-padded
//
// The OLED transfer command (0x40) is a vendor extension carried over the
// same channel; its argument layout lives in package oled.
package via

import (
	"encoding/hex"
	"strings"
)

const (
	// ReportLen is the fixed size of every VIA report, report ID included.
	ReportLen = 32

	// ReportID is always the first byte of a report.
	ReportID = 0x00

	// Standard VIA commands.
	CmdGetProtocolVersion = 0x01
	CmdGetKeyboardValue   = 0x02

	// CmdOLED is the vendor extension for OLED panel transfers.
	CmdOLED = 0x40
)

// NewReport returns a ReportLen-byte report carrying cmd and args,
// zero-padded.
func NewReport(cmd byte, args ...byte) []byte {
	report := make([]byte, ReportLen)
	report[0] = ReportID
	report[1] = cmd
	copy(report[2:], args)
	return report
}

// FormatReport renders a report as dash-separated hex for log output.
func FormatReport(b []byte) string {
	hexDigits := hex.EncodeToString(b)
	var builder strings.Builder
	for i, r := range hexDigits {
		if i > 0 && i%2 == 0 {
			builder.WriteString("-")
		}
		builder.WriteRune(r)
	}
	return builder.String()
}
