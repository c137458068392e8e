package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/fraction/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for fraction resources.
	uriScheme = "fraction://"

	// historyResourceLimit caps the entries returned by the history resource.
	historyResourceLimit = 50
)

// calculationInfo is the JSON form of a recorded calculation.
type calculationInfo struct {
	ID         string    `json:"id"`
	Expression string    `json:"expression"`
	Result     string    `json:"result"`
	CreatedAt  time.Time `json:"created_at"`
}

func newCalculationInfo(c domain.Calculation) calculationInfo {
	return calculationInfo{
		ID:         c.ID,
		Expression: c.Expression().String(),
		Result:     c.Result,
		CreatedAt:  c.CreatedAt,
	}
}

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "history",
		Name:        "history",
		Description: "Most recent calculations, newest first",
		MIMEType:    "application/json",
	}, s.handleHistoryResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "history/{id}",
		Name:        "calculation",
		Description: "A single recorded calculation",
		MIMEType:    "application/json",
	}, s.handleCalculationResource)
}

// handleHistoryResource returns the most recent calculations.
func (s *Server) handleHistoryResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.History == nil {
		return jsonResult(req.Params.URI, []calculationInfo{})
	}

	calcs, err := s.ports.History.List(ctx, historyResourceLimit)
	if err != nil {
		return nil, fmt.Errorf("listing history: %w", err)
	}

	infos := make([]calculationInfo, len(calcs))
	for i := range calcs {
		infos[i] = newCalculationInfo(calcs[i])
	}

	return jsonResult(req.Params.URI, infos)
}

// handleCalculationResource returns a single calculation.
func (s *Server) handleCalculationResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.History == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	id := extractCalculationID(req.Params.URI)
	if id == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	calc, err := s.ports.History.Get(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	if err != nil {
		return nil, fmt.Errorf("getting calculation: %w", err)
	}

	return jsonResult(req.Params.URI, newCalculationInfo(*calc))
}

func jsonResult(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling resource: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractCalculationID extracts the ID from a URI like fraction://history/{id}.
func extractCalculationID(uri string) string {
	const prefix = uriScheme + "history/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	return strings.TrimPrefix(uri, prefix)
}
