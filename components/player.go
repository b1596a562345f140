package components

import "github.com/yohamta/donburi"

type PlayerData struct {
	// Runner time of the last step the player was grounded
	LastGrounded float64
	// Grounded in the previous step, for landing detection
	WasGrounded bool
}

var Player = donburi.NewComponentType[PlayerData]()
