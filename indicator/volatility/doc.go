// Package volatility holds indicators that measure how far prices move:
// the average true range and Bollinger bands.
package volatility
