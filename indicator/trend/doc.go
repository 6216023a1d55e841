// Package trend holds trend-following indicators: the Hull moving average,
// the Parabolic SAR and the Aroon oscillator.
package trend
