package components

import (
	"github.com/automoto/buildyguy/physics"
	"github.com/yohamta/donburi"
)

type SimulationData struct {
	*physics.Simulation
}

var Simulation = donburi.NewComponentType[SimulationData]()
