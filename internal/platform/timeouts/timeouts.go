// Package timeouts defines shared timeout constants used across arithmos
// processes.
package timeouts

import "time"

// GRPCDial caps the wait time when dialing the numeral service.
const GRPCDial = 2 * time.Second

// GRPCRequest caps a single conversion call to the numeral service.
const GRPCRequest = 2 * time.Second

// ReadHeader limits how long the metrics HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits graceful shutdown of servers and telemetry exporters.
const Shutdown = 5 * time.Second
