// Package volume holds indicators that weigh price by traded volume: the
// money flow index and VWAP.
package volume
