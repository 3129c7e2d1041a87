package bodies

import "github.com/janisto/solar-playground/internal/solar"

// Body is the API representation of a catalog entry.
type Body struct {
	Name        string  `json:"name"        doc:"Body name"                                example:"Earth"`
	Kind        string  `json:"kind"        doc:"Body kind"                                example:"planet" enum:"star,planet"`
	Color       string  `json:"color"       doc:"Display color (CSS color)"                example:"lightblue"`
	DistanceMkm float64 `json:"distanceMkm" doc:"Mean distance from the Sun in 10^6 km"    example:"149.6"`
	RadiusKm    float64 `json:"radiusKm"    doc:"Mean radius in km"                        example:"6378"`
	MassE24Kg   float64 `json:"massE24Kg"   doc:"Mass in 10^24 kg"                         example:"5.97"`
	Description string  `json:"description" doc:"Informational text shown for the body"`
}

func fromCatalog(b solar.Body) Body {
	return Body{
		Name:        b.Name,
		Kind:        string(b.Kind),
		Color:       b.Color,
		DistanceMkm: b.DistanceMkm,
		RadiusKm:    b.RadiusKm,
		MassE24Kg:   b.MassE24Kg,
		Description: b.Description,
	}
}
