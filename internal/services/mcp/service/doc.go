// Package service wires the MCP protocol transport to the numeral tools.
//
// Tools convert in-process by default. When a numeral service address is
// configured they call it over gRPC instead, after a health check.
package service
