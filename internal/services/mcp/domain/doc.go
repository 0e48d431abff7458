// Package domain translates MCP tool calls into numeral conversions.
//
// Each tool has a definition function returning its *mcp.Tool and a handler
// constructor taking the Converter it calls. Conversion failures surface as
// tool errors carrying the localized message, so MCP clients can show them
// as-is.
package domain
