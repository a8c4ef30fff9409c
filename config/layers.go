package config

import "github.com/yohamta/donburi/ecs"

const (
	// Default is the only render layer; renderers run in registration order.
	Default ecs.LayerID = iota
)
