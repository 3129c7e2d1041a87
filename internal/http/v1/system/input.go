package system

// GetInput defines the viewport, seed and number of steps to simulate.
type GetInput struct {
	Width    int   `query:"width"    doc:"Viewport width"                                        default:"1920" minimum:"1" maximum:"7680"`
	Height   int   `query:"height"   doc:"Viewport height"                                       default:"1080" minimum:"1" maximum:"4320"`
	Seed     int64 `query:"seed"     doc:"Seed for the initial planet angles, 0 picks one"      default:"0"    minimum:"0" maximum:"9007199254740991"`
	Steps    int   `query:"steps"    doc:"Number of integration steps to run before responding" default:"0"    minimum:"0" maximum:"50000"`
	ScaleSun bool  `query:"scaleSun" doc:"Draw the Sun at the same scale as the planets"`
}
