package deeplink

import "sendqr/internal/pkg/parser"

const (
	DeviceMobile  = "mobile"
	DeviceDesktop = "desktop"
)

// Device is an advisory guess from the user agent. Nothing is gated on it.
type Device struct {
	Type    string `json:"type"`
	OS      string `json:"os"`
	Browser string `json:"browser"`
	Note    string `json:"note"`
}

func DeviceHint(ua string) Device {
	os, browser := parser.ParseUserAgent(ua)
	d := Device{OS: os, Browser: browser}
	if parser.IsMobile(ua) {
		d.Type = DeviceMobile
		d.Note = "Mobile device detected. If the app does not open, check that it is installed."
	} else {
		d.Type = DeviceDesktop
		d.Note = "Opening the app may not work on a desktop. Try it on a phone."
	}
	return d
}
