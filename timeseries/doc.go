// Package timeseries provides time series data structures and utilities.
//
// This package includes the Series type for representing position-indexed
// observations, along with functions for data loading and transformation.
// A Series carries no timestamps: Values[i] is the observation at step i,
// matching the layout of series exchanged across the host buffer boundary.
//
// # Creating a Series
//
// Create a series from a slice:
//
//	values := []float64{100, 102, 105, 103, 108, 110}
//	series := timeseries.New(values)
//
// Or from a float32 buffer obtained from the arena:
//
//	series := timeseries.FromFloat32(buf)
//
// # Loading from CSV
//
// Load series data from CSV files:
//
//	// Load a specific column
//	series, err := timeseries.LoadCSVColumn("data.csv", "value")
//
//	// Load with filtering
//	series, err := timeseries.LoadCSVFiltered(
//	    "data.csv",
//	    "country", "Australia",  // filter column and value
//	    "population",            // value column
//	)
//
// # Basic Statistics
//
// Calculate summary statistics:
//
//	mean := series.Mean()
//	std := series.Std()
//	min := series.Min()
//	max := series.Max()
//	median := series.Median()
//
// # Slicing and Manipulation
//
// Work with subsets of the data:
//
//	// Get a slice
//	subset := series.Slice(10, 50)
//
//	// Create lagged version
//	lagged := series.Lag(1)
//
//	// Copy the series
//	copy := series.Copy()
//
// # CSV Options
//
// Customize CSV loading:
//
//	opts := &timeseries.CSVOptions{
//	    ValueColumn: "value",
//	    HasHeader:   true,
//	}
//	series, err := timeseries.LoadCSVFromReader(reader, opts)
package timeseries
