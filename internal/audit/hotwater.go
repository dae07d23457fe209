package audit

// HotWaterSystem identifies the domestic hot water production system.
type HotWaterSystem string

const (
	HotWaterGas      HotWaterSystem = "gas"
	HotWaterElectric HotWaterSystem = "electric"
)

// Default generation efficiencies by system when the caller does not supply
// a measured value.
const (
	defaultGasEfficiency      = 0.85
	defaultElectricEfficiency = 0.95
)

// DomesticHotWaterLoad is the useful and final energy demand of domestic hot
// water production, per square meter of conditioned surface and per year.
type DomesticHotWaterLoad struct {
	UsefulKwhPerM2 float64 `json:"usefulPerSquare"`
	PerSquareMeter float64 `json:"perSquare"` // final energy after generation losses
}

// ComputeDomesticHotWaterLoad derives the final hot-water energy demand from
// the theoretical demand and a utilization factor, divided by the generation
// efficiency of the system. An efficiency of 0 selects the system default.
func ComputeDomesticHotWaterLoad(demandKwhPerM2, utilizationFactor float64, system HotWaterSystem, efficiency float64) DomesticHotWaterLoad {
	if efficiency <= 0 {
		switch system {
		case HotWaterElectric:
			efficiency = defaultElectricEfficiency
		default:
			efficiency = defaultGasEfficiency
		}
	}

	useful := demandKwhPerM2 * utilizationFactor

	return DomesticHotWaterLoad{
		UsefulKwhPerM2: useful,
		PerSquareMeter: useful / efficiency,
	}
}
