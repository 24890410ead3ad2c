package ladybug

/*
Conversion between incident shortwave flux, effective radiant field (ERF)
and the resulting mean-radiant-temperature change, after Arens et al.
(2014), "Modeling the comfort effects of short-wave solar radiation
indoors".
*/

// RadiantHeatTransferCoeff is the radiative heat transfer coefficient of a
// typical human body, W/m2K.
const RadiantHeatTransferCoeff = 6.012

// lwEmissivity is the longwave emissivity of the body surface the ERF
// definition normalizes by.
const lwEmissivity = 0.95

// ERFFromFlux converts incident shortwave flux, W/m2, into the effective
// radiant field: ERF = flux x clothingAbsorptivity / 0.95.
func ERFFromFlux(flux, clothingAbsorptivity float64) float64 {
	return flux * clothingAbsorptivity / lwEmissivity
}

// MRTDeltaFromERF converts an ERF, W/m2, into the mean-radiant-temperature
// change, degrees C: delta = ERF / (fracEff x 6.012).
func MRTDeltaFromERF(erf, fracEff float64) float64 {
	return erf / (fracEff * RadiantHeatTransferCoeff)
}

/*
fluxToTemperature converts a per-sample accumulated flux into a
solar-adjusted radiant temperature, used for the aggregated mannequin
outputs of a high-resolution run.

	Args:
	    flux: time-averaged radiation on the sample
	    cloA: clothing absorptivity
	    fracEff: effective-radiation-area fraction
	    baseline: average baseline MRT over the period, degrees C
	    avgWinTrans: average window transmissivity over the period
	    energyFac: 500 for a cumulative period run (kWh-scaled input),
	        1 for a single hour

	Returns:
	    the sample's solar-adjusted radiant temperature, degrees C
*/
func fluxToTemperature(flux, cloA, fracEff, baseline, avgWinTrans, energyFac float64) float64 {
	erf := ERFFromFlux(avgWinTrans*flux*energyFac, cloA)
	return baseline + MRTDeltaFromERF(erf, fracEff)
}
