package server

import "droneseek/internal/game"

type vec3DTO struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

func vecDTO(v game.Vec3) vec3DTO { return vec3DTO{X: v.X, Y: v.Y, Z: v.Z} }

type agentDTO struct {
	ID       int     `json:"id"`
	Role     string  `json:"role"`
	Pos      vec3DTO `json:"pos"`
	Target   vec3DTO `json:"target"`
	State    string  `json:"state"`
	Detected bool    `json:"detected"`
	Caught   bool    `json:"caught"`
}

type obstacleDTO struct {
	Min    vec3DTO `json:"min"`
	Max    vec3DTO `json:"max"`
	Height float64 `json:"height"`
}

// stateDTO is the wire shape of one session snapshot, pushed to every
// connected client and written to the frame log.
type stateDTO struct {
	Type        string        `json:"type"`
	Phase       string        `json:"phase"`
	Elapsed     float64       `json:"elapsed"`
	Remaining   float64       `json:"remaining"`
	CaughtCount int           `json:"caught_count"`
	TotalHiders int           `json:"total_hiders"`
	Winner      string        `json:"winner"`
	Agents      []agentDTO    `json:"agents"`
	Obstacles   []obstacleDTO `json:"obstacles"`
}

func snapshotDTO(snap *game.SessionSnapshot) stateDTO {
	dto := stateDTO{
		Type:        "state",
		Phase:       snap.Phase.String(),
		Elapsed:     snap.Elapsed,
		Remaining:   snap.Remaining,
		CaughtCount: snap.CaughtCount,
		TotalHiders: snap.TotalHiders,
		Winner:      snap.Winner.String(),
		Agents:      make([]agentDTO, 0, len(snap.Agents)),
		Obstacles:   make([]obstacleDTO, 0, len(snap.Obstacles)),
	}
	for _, a := range snap.Agents {
		dto.Agents = append(dto.Agents, agentDTO{
			ID:       a.ID,
			Role:     a.Role.String(),
			Pos:      vecDTO(a.Pos),
			Target:   vecDTO(a.Target),
			State:    a.State.String(),
			Detected: a.Detected,
			Caught:   a.Caught,
		})
	}
	for _, o := range snap.Obstacles {
		dto.Obstacles = append(dto.Obstacles, obstacleDTO{
			Min:    vecDTO(o.Min),
			Max:    vecDTO(o.Max),
			Height: o.Height,
		})
	}
	return dto
}
