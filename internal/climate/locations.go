// Package climate holds the static climatic reference data the simulators run
// against: governorate coordinates, fallback solar yields, seasonal weight
// tables and building-usage coefficients.
package climate

import (
	"sort"

	"github.com/joya-energy/solar-simulation-backend/internal/apperrors"
)

// Coordinates locates a governorate for irradiance lookups.
type Coordinates struct {
	Latitude  float64
	Longitude float64
}

// locationEntry ties a governorate to its coordinates and the static yield
// used when the irradiance provider is unreachable.
type locationEntry struct {
	Coords        Coordinates
	FallbackYield float64 // kWh/kWp/year
	Zone          ClimateZoneOf
}

// ClimateZoneOf aliases the model zone tag locally to keep the table readable.
type ClimateZoneOf = string

// locations is the static governorate table. Fallback yields are long-term
// PVGIS averages for an optimally tilted crystalline installation; they rise
// toward the south.
var locations = map[string]locationEntry{
	"tunis":       {Coords: Coordinates{36.8065, 10.1815}, FallbackYield: 1540, Zone: "coastal"},
	"ariana":      {Coords: Coordinates{36.8625, 10.1956}, FallbackYield: 1540, Zone: "coastal"},
	"ben arous":   {Coords: Coordinates{36.7531, 10.2189}, FallbackYield: 1540, Zone: "coastal"},
	"manouba":     {Coords: Coordinates{36.8101, 10.0863}, FallbackYield: 1535, Zone: "coastal"},
	"bizerte":     {Coords: Coordinates{37.2744, 9.8739}, FallbackYield: 1510, Zone: "coastal"},
	"nabeul":      {Coords: Coordinates{36.4561, 10.7376}, FallbackYield: 1555, Zone: "coastal"},
	"zaghouan":    {Coords: Coordinates{36.4029, 10.1429}, FallbackYield: 1560, Zone: "inland"},
	"beja":        {Coords: Coordinates{36.7256, 9.1817}, FallbackYield: 1505, Zone: "inland"},
	"jendouba":    {Coords: Coordinates{36.5011, 8.7802}, FallbackYield: 1500, Zone: "inland"},
	"kef":         {Coords: Coordinates{36.1742, 8.7049}, FallbackYield: 1545, Zone: "inland"},
	"siliana":     {Coords: Coordinates{36.0844, 9.3708}, FallbackYield: 1550, Zone: "inland"},
	"sousse":      {Coords: Coordinates{35.8254, 10.6360}, FallbackYield: 1570, Zone: "coastal"},
	"monastir":    {Coords: Coordinates{35.7643, 10.8113}, FallbackYield: 1570, Zone: "coastal"},
	"mahdia":      {Coords: Coordinates{35.5047, 11.0622}, FallbackYield: 1575, Zone: "coastal"},
	"kairouan":    {Coords: Coordinates{35.6781, 10.0963}, FallbackYield: 1590, Zone: "inland"},
	"kasserine":   {Coords: Coordinates{35.1676, 8.8365}, FallbackYield: 1600, Zone: "inland"},
	"sidi bouzid": {Coords: Coordinates{35.0382, 9.4858}, FallbackYield: 1610, Zone: "inland"},
	"sfax":        {Coords: Coordinates{34.7406, 10.7603}, FallbackYield: 1600, Zone: "coastal"},
	"gabes":       {Coords: Coordinates{33.8815, 10.0982}, FallbackYield: 1620, Zone: "coastal"},
	"medenine":    {Coords: Coordinates{33.3549, 10.5055}, FallbackYield: 1650, Zone: "saharan"},
	"tataouine":   {Coords: Coordinates{32.9297, 10.4518}, FallbackYield: 1680, Zone: "saharan"},
	"gafsa":       {Coords: Coordinates{34.4250, 8.7842}, FallbackYield: 1640, Zone: "saharan"},
	"tozeur":      {Coords: Coordinates{33.9197, 8.1335}, FallbackYield: 1700, Zone: "saharan"},
	"kebili":      {Coords: Coordinates{33.7044, 8.9690}, FallbackYield: 1690, Zone: "saharan"},
}

// CoordinatesFor resolves a governorate to coordinates.
func CoordinatesFor(location string) (Coordinates, error) {
	entry, ok := locations[location]
	if !ok {
		return Coordinates{}, apperrors.ErrUnknownLocation
	}
	return entry.Coords, nil
}

// FallbackYieldFor returns the static annual yield for a governorate.
func FallbackYieldFor(location string) (float64, error) {
	entry, ok := locations[location]
	if !ok {
		return 0, apperrors.ErrUnknownLocation
	}
	return entry.FallbackYield, nil
}

// ZoneFor returns the climate zone a governorate belongs to.
func ZoneFor(location string) (string, error) {
	entry, ok := locations[location]
	if !ok {
		return "", apperrors.ErrUnknownLocation
	}
	return entry.Zone, nil
}

// Locations returns all known governorates, sorted for stable output.
func Locations() []string {
	names := make([]string, 0, len(locations))
	for name := range locations {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FallbackYields returns the full static yield table keyed by governorate.
func FallbackYields() map[string]float64 {
	yields := make(map[string]float64, len(locations))
	for name, entry := range locations {
		yields[name] = entry.FallbackYield
	}
	return yields
}
