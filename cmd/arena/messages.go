package main

// inputMessage is what clients send. Movement axes are resampled every
// tick from the latest message; jump and look deltas are edge events
// and accumulate until the next tick consumes them.
type inputMessage struct {
	Type   string  `json:"type"`
	MoveX  float32 `json:"move_x"`
	MoveZ  float32 `json:"move_z"`
	Sprint bool    `json:"sprint"`
	Jump   bool    `json:"jump"`
	DYaw   float32 `json:"dyaw"`
	DPitch float32 `json:"dpitch"`
}

type playerState struct {
	ID       string     `json:"id"`
	Pos      [3]float32 `json:"pos"`
	Vel      [3]float32 `json:"vel"`
	Yaw      float32    `json:"yaw"`
	Pitch    float32    `json:"pitch"`
	OnGround bool       `json:"on_ground"`
	Jumps    int        `json:"jumps"`
}

type stateMessage struct {
	Type    string        `json:"type"`
	Tick    uint64        `json:"tick"`
	Players []playerState `json:"players"`
}
