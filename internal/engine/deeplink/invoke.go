package deeplink

import "time"

const CopySuccessMessage = "Deep link copied. Paste it into a mobile browser's address bar to try it."

// CopyFallbackMessage is shown when the clipboard write fails, so the link can be copied by hand.
func CopyFallbackMessage(link string) string {
	return "Copy failed. Please copy the link manually.\n" + link
}

// FallbackConfig controls where the page goes if the app never opens.
// An empty URL leaves the fallback as a no-op.
type FallbackConfig struct {
	URL   string
	Delay time.Duration
}

// Invocation tells the client what to navigate to. Success is never reported back:
// there is no reliable signal that the receiving app handled the link.
type Invocation struct {
	Target          string `json:"target"`
	FallbackURL     string `json:"fallback_url,omitempty"`
	FallbackAfterMS int64  `json:"fallback_after_ms,omitempty"`
}

func PlanInvocation(link string, fb FallbackConfig) Invocation {
	inv := Invocation{Target: link}
	if fb.URL != "" {
		inv.FallbackURL = fb.URL
		inv.FallbackAfterMS = fb.Delay.Milliseconds()
	}
	return inv
}
