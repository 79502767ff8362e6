package session

import "fmt"

// Effect is a side effect a transition asks the runtime to perform.
type Effect int

const (
	EffectEnterFullscreen Effect = iota + 1
	EffectExitFullscreen
	EffectStartTicker
	EffectStopTicker
)

func (e Effect) String() string {
	switch e {
	case EffectEnterFullscreen:
		return "enter-fullscreen"
	case EffectExitFullscreen:
		return "exit-fullscreen"
	case EffectStartTicker:
		return "start-ticker"
	case EffectStopTicker:
		return "stop-ticker"
	default:
		return fmt.Sprintf("Effect(%d)", int(e))
	}
}
