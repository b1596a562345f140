package config

import (
	"flag"
	"os"
)

// RegisterFlags binds the tunables worth changing from the command line.
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.Float64Var(&c.Physics.Gravity, "gravity", c.Physics.Gravity, "Gravity in screen heights per second squared")
	fs.BoolVar(&c.Physics.BroadPhase.Enabled, "broadphase", c.Physics.BroadPhase.Enabled, "Prefilter collision pairs with a grid")
	fs.BoolVar(&c.Physics.DebugCollisions, "debug", c.Physics.DebugCollisions, "Log unclassified contacts and outline bodies")
	fs.Float64Var(&c.Runner.CameraSpeed, "camspeed", c.Runner.CameraSpeed, "Camera scroll speed")
	fs.Float64Var(&c.Runner.MoveSpeed, "movespeed", c.Runner.MoveSpeed, "Player movement speed")
}

// ApplyEnv enables collision debugging when DEBUG_COLLISION is set.
func (c *Config) ApplyEnv() {
	if os.Getenv("DEBUG_COLLISION") != "" {
		c.Physics.DebugCollisions = true
	}
}
