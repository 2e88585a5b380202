package parser

import "strings"

// ParseUserAgent makes a rough OS and browser guess. Results are hints only.
func ParseUserAgent(ua string) (os, browser string) {
	uaLower := strings.ToLower(ua)

	// Mobile first: Android UAs mention Linux and iOS UAs mention Mac OS.
	switch {
	case strings.Contains(uaLower, "android"):
		os = "Android"
	case strings.Contains(uaLower, "iphone") || strings.Contains(uaLower, "ipad") || strings.Contains(uaLower, "ipod"):
		os = "iOS"
	case strings.Contains(uaLower, "windows"):
		os = "Windows"
	case strings.Contains(uaLower, "mac os"):
		os = "macOS"
	case strings.Contains(uaLower, "linux"):
		os = "Linux"
	default:
		os = "Unknown"
	}

	switch {
	case strings.Contains(uaLower, "edg"):
		browser = "Edge"
	case strings.Contains(uaLower, "samsungbrowser"):
		browser = "Samsung Internet"
	case strings.Contains(uaLower, "chrome") || strings.Contains(uaLower, "crios"):
		browser = "Chrome"
	case strings.Contains(uaLower, "firefox") || strings.Contains(uaLower, "fxios"):
		browser = "Firefox"
	case strings.Contains(uaLower, "safari"):
		browser = "Safari"
	default:
		browser = "Unknown"
	}

	return os, browser
}

// IsMobile reports whether ua names a phone or tablet OS.
func IsMobile(ua string) bool {
	uaLower := strings.ToLower(ua)
	for _, m := range []string{"android", "iphone", "ipad", "ipod"} {
		if strings.Contains(uaLower, m) {
			return true
		}
	}
	return false
}
