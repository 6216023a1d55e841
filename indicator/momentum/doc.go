// Package momentum holds oscillators that measure the speed of price
// changes: MACD, RSI, the stochastic oscillator and CCI.
package momentum
