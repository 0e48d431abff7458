package domain

import (
	"context"
	"strings"

	apperrors "github.com/louisbranch/arithmos/internal/platform/errors"
	numeralservice "github.com/louisbranch/arithmos/internal/services/numeral"
	greek "github.com/louisbranch/arithmos/numeral"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Tool names.
const (
	EncodeToolName = "greek_numeral_encode"
	DecodeToolName = "greek_numeral_decode"
)

// EncodeInput represents the MCP tool input for encoding a number.
type EncodeInput struct {
	Value     int  `json:"value" jsonschema:"integer between 0 and 999999"`
	Lowercase bool `json:"lowercase,omitempty" jsonschema:"render small letters instead of capitals"`
}

// DecodeInput represents the MCP tool input for decoding a numeral.
type DecodeInput struct {
	Numeral string `json:"numeral" jsonschema:"Greek numeral terminated by a prime, e.g. ΧΙϜ'"`
}

// NumeralResult is the output of both tools.
type NumeralResult struct {
	Value   int    `json:"value" jsonschema:"integer value"`
	Numeral string `json:"numeral" jsonschema:"Greek numeral; canonical capitals for decode"`
}

// EncodeTool defines the MCP tool schema for encoding a number.
func EncodeTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        EncodeToolName,
		Description: "Converts an integer between 0 and 999,999 into a Greek alphabetic numeral such as ΧΙϜ' (616).",
	}
}

// DecodeTool defines the MCP tool schema for decoding a numeral.
func DecodeTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        DecodeToolName,
		Description: "Converts a Greek alphabetic numeral such as ͵ΑΥΝΓ' back into its integer value.",
	}
}

// EncodeHandler executes an encode request.
func EncodeHandler(converter numeralservice.Converter, locale string) mcp.ToolHandlerFor[EncodeInput, NumeralResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input EncodeInput) (*mcp.CallToolResult, NumeralResult, error) {
		c := greek.Upper
		if input.Lowercase {
			c = greek.Lower
		}
		out, err := converter.Encode(ctx, input.Value, c)
		if err != nil {
			return nil, NumeralResult{}, localize(err, locale)
		}
		return nil, NumeralResult{Value: input.Value, Numeral: out}, nil
	}
}

// DecodeHandler executes a decode request.
func DecodeHandler(converter numeralservice.Converter, locale string) mcp.ToolHandlerFor[DecodeInput, NumeralResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input DecodeInput) (*mcp.CallToolResult, NumeralResult, error) {
		value, err := converter.Decode(ctx, input.Numeral)
		if err != nil {
			return nil, NumeralResult{}, localize(err, locale)
		}
		canonical, err := converter.Encode(ctx, value, greek.Upper)
		if err != nil {
			return nil, NumeralResult{}, localize(err, locale)
		}
		return nil, NumeralResult{Value: value, Numeral: canonical}, nil
	}
}

// ToolError is a conversion failure rendered for the MCP client.
type ToolError struct {
	Message string
	Err     error
}

func (e *ToolError) Error() string {
	return e.Message
}

func (e *ToolError) Unwrap() error {
	return e.Err
}

func localize(err error, locale string) error {
	msg := strings.TrimSpace(apperrors.Localize(err, locale))
	if msg == "" {
		msg = err.Error()
	}
	return &ToolError{Message: msg, Err: err}
}
