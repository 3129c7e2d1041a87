package system

import (
	"github.com/janisto/solar-playground/internal/platform/timeutil"
	"github.com/janisto/solar-playground/internal/solar"
)

// Object is a body of the simulated system in viewport units.
type Object struct {
	Name       string  `json:"name"       doc:"Body name"                      example:"Earth"`
	Color      string  `json:"color"      doc:"Display color"                  example:"lightblue"`
	X          float64 `json:"x"          doc:"Horizontal position"`
	Y          float64 `json:"y"          doc:"Vertical position"`
	VX         float64 `json:"vx"         doc:"Horizontal velocity per step"`
	VY         float64 `json:"vy"         doc:"Vertical velocity per step"`
	Radius     float64 `json:"radius"     doc:"Drawn radius"`
	Mass       float64 `json:"mass"       doc:"Scaled mass"`
	Stationary bool    `json:"stationary" doc:"Whether the body is fixed in place"`
}

// Snapshot is the state of the system after the requested number of steps.
type Snapshot struct {
	Seed        int64         `json:"seed"        doc:"Seed used for the initial angles"      example:"42"`
	Steps       int           `json:"steps"       doc:"Steps simulated"                       example:"0"`
	Width       int           `json:"width"       doc:"Viewport width"                        example:"1920"`
	Height      int           `json:"height"      doc:"Viewport height"                       example:"1080"`
	Gravity     float64       `json:"gravity"     doc:"Gravitational constant of the model"   example:"0.00001"`
	GeneratedAt timeutil.Time `json:"generatedAt" doc:"Time the snapshot was computed"`
	Bodies      []Object      `json:"bodies"      doc:"Sun first, then the planets outwards"`
}

// GetOutput wraps the snapshot.
type GetOutput struct {
	Body Snapshot
}

func fromSystem(s *solar.System) []Object {
	out := make([]Object, 0, len(s.Objects))
	for _, o := range s.Objects {
		out = append(out, Object{
			Name:       o.Name,
			Color:      o.Color,
			X:          o.X,
			Y:          o.Y,
			VX:         o.VX,
			VY:         o.VY,
			Radius:     o.Radius,
			Mass:       o.Mass,
			Stationary: o.Stationary,
		})
	}
	return out
}
