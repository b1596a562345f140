package config

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionJump
	ActionSpawnBottom
	ActionSpawnMiddle
	ActionSpawnTop
	ActionSpawnFloating
	ActionPause
	ActionRestart
	ActionCount // Must be last - used for array sizing
)

var actionNames = [ActionCount]string{
	ActionNone:          "none",
	ActionMoveLeft:      "left",
	ActionMoveRight:     "right",
	ActionJump:          "jump",
	ActionSpawnBottom:   "platform-bottom",
	ActionSpawnMiddle:   "platform-middle",
	ActionSpawnTop:      "platform-top",
	ActionSpawnFloating: "platform-floating",
	ActionPause:         "pause",
	ActionRestart:       "restart",
}

func (a ActionID) String() string {
	if a < 0 || a >= ActionCount {
		return "unknown"
	}
	return actionNames[a]
}

// SpawnHeight maps the platform spawn actions to their height.
func SpawnHeight(a ActionID) (PlatformHeight, bool) {
	switch a {
	case ActionSpawnBottom:
		return PlatformBottom, true
	case ActionSpawnMiddle:
		return PlatformMiddle, true
	case ActionSpawnTop:
		return PlatformTop, true
	}
	return PlatformMiddle, false
}
