// Package stats contains the statistics used to fit and select time series models: fit scores,
// autocorrelation, stationarity and seasonality tests, information criteria and moving averages.
package stats
