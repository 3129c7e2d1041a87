// Package solar holds the catalog of the scale solar system and the
// integrator that moves it.
package solar

import (
	"errors"
	"strings"
)

// ErrUnknownBody is returned when a name matches no catalog entry.
var ErrUnknownBody = errors.New("unknown body")

// Kind classifies a catalog entry.
type Kind string

const (
	KindStar   Kind = "star"
	KindPlanet Kind = "planet"
)

// Body is one catalog entry with its physical constants. Distances are in
// millions of km and masses in 10^24 kg.
type Body struct {
	Name        string
	Kind        Kind
	Color       string
	DistanceMkm float64
	RadiusKm    float64
	MassE24Kg   float64
	Description string
}

var catalog = []Body{
	{
		Name:        "Sun",
		Kind:        KindStar,
		Color:       "yellow",
		RadiusKm:    695508,
		MassE24Kg:   1988500,
		Description: "The solar system's largest nuclear reactor, the Sun is made up of predominantly hydrogen and helium. If the Sun in this model were scaled by the same factor as the planets, it would go past the orbit of Saturn. Request the system with scaleSun and see for yourself!",
	},
	{
		Name:        "Mercury",
		Kind:        KindPlanet,
		Color:       "lightgray",
		DistanceMkm: 57.9,
		RadiusKm:    2439.5,
		MassE24Kg:   0.33,
		Description: "Mercury, the closest planet to the Sun, is named after the swift messenger god. The surface color is gray, resembling the Moon, with surface temperatures ranging from -173 to 427°C.",
	},
	{
		Name:        "Venus",
		Kind:        KindPlanet,
		Color:       "pink",
		DistanceMkm: 108.2,
		RadiusKm:    6052,
		MassE24Kg:   4.87,
		Description: "Venus is about 108.2 million km away from the Sun. Known for its bright, yellowish-white color, Venus experiences extreme greenhouse effects, a result of its CO2 rich atmosphere, with surface temperatures hovering around 465°C.",
	},
	{
		Name:        "Earth",
		Kind:        KindPlanet,
		Color:       "lightblue",
		DistanceMkm: 149.6,
		RadiusKm:    6378,
		MassE24Kg:   5.97,
		Description: "Earth, our home planet. With an average surface temperature of 14°C, it is the only planet in the solar system that can sustain life as we know it. Better take good care of it!",
	},
	{
		Name:        "Mars",
		Kind:        KindPlanet,
		Color:       "red",
		DistanceMkm: 228,
		RadiusKm:    3396,
		MassE24Kg:   0.642,
		Description: "Mars, known as the Red Planet, is 227.9 million km from the Sun. Its reddish appearance comes from the plentiful iron oxide dust. Temperatures on Mars can vary widely, averaging around -60°C.",
	},
	{
		Name:        "Jupiter",
		Kind:        KindPlanet,
		Color:       "#FF7000",
		DistanceMkm: 778.5,
		RadiusKm:    71492,
		MassE24Kg:   1898,
		Description: "Jupiter, the largest planet in our solar system, has a mass of 1,898 x 10^24 kg and is 778.5 million km from the Sun. Its striking bands of white, red, orange, brown, and yellow are due to its gaseous nature. The average temperature is about -145°C.",
	},
	{
		Name:        "Saturn",
		Kind:        KindPlanet,
		Color:       "#FF9E00",
		DistanceMkm: 1432,
		RadiusKm:    60268,
		MassE24Kg:   568,
		Description: "Saturn, famous for its beautiful ring system, is about 1.434 billion km away from the Sun. Its pale yellow color is due to ammonia crystals in its atmosphere. Temperatures are cold, averaging -178°C.",
	},
	{
		Name:        "Uranus",
		Kind:        KindPlanet,
		Color:       "#00FFD8",
		DistanceMkm: 2867,
		RadiusKm:    25559,
		MassE24Kg:   86.8,
		Description: "Uranus is distinguished by its blue-green color, occurring due to methane in its atmosphere. It is 2.871 billion km from the Sun, and has an unusual tilt, essentially orbiting the Sun on its side, which scientists attribute to a collision with an Earth-sized object a very long time ago. Average temperatures are around -224°C.",
	},
	{
		Name:        "Neptune",
		Kind:        KindPlanet,
		Color:       "#0023FF",
		DistanceMkm: 4515,
		RadiusKm:    24764,
		MassE24Kg:   102,
		Description: "Neptune is known for its vivid blue color, and holds the record for the fastest winds in the solar system. Scientists suspect that it rains diamonds 8,000km under the 'surface'. It is 4.495 billion km from the Sun and is the coldest of the planets, with temperatures dipping to -214°C.",
	},
	{
		Name:        "Pluto",
		Kind:        KindPlanet,
		Color:       "#999",
		DistanceMkm: 5906.4,
		RadiusKm:    1188,
		MassE24Kg:   0.013,
		Description: "Pluto, arguably the most beloved object in the solar system, is 5.906 billion km from the Sun. Its color varies from white to charcoal black, with surface temperatures averaging -229°C. Pluto was reclassified as a dwarf planet in 2006, and has a heart-shaped glacier to show it loves us too.",
	},
}

// Catalog returns every body, Sun first, then the planets outwards.
// The returned slice is a copy.
func Catalog() []Body {
	return append([]Body(nil), catalog...)
}

// Filter returns the catalog entries of kind, or all of them if kind is empty.
func Filter(kind Kind) []Body {
	if kind == "" {
		return Catalog()
	}
	var out []Body
	for _, b := range catalog {
		if b.Kind == kind {
			out = append(out, b)
		}
	}
	return out
}

// Lookup finds a body by name, ignoring case.
func Lookup(name string) (Body, error) {
	for _, b := range catalog {
		if strings.EqualFold(b.Name, name) {
			return b, nil
		}
	}
	return Body{}, ErrUnknownBody
}
