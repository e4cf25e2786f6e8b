package receipt

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/kanakraj/jewelpos-api/internal/domain/entity"
)

// Generator sends a finalized bill downstream for document rendering. It is
// a one-way call made after the sale transaction commits; a failed generation
// never unwinds the sale.
type Generator interface {
	// Generate hands the receipt to the document service.
	Generate(ctx context.Context, r *entity.Receipt) error
	// IsAvailable returns true if the downstream service is reachable.
	IsAvailable() bool
}

// --- HTTP Generator (posts JSON to a document-generation service) ---

type httpGenerator struct {
	endpoint string
	client   *http.Client
}

// NewHTTPGenerator creates a generator that POSTs receipts to the given URL.
func NewHTTPGenerator(endpoint string) Generator {
	return &httpGenerator{
		endpoint: endpoint,
		client:   &http.Client{Timeout: 10 * time.Second},
	}
}

func (g *httpGenerator) Generate(ctx context.Context, r *entity.Receipt) error {
	body, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("receipt: failed to encode receipt %s: %w", r.BillNo, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("receipt: failed to build request for %s: %w", r.BillNo, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("receipt: failed to reach document service at %s: %w", g.endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("receipt: document service returned %d for bill %s", resp.StatusCode, r.BillNo)
	}
	return nil
}

func (g *httpGenerator) IsAvailable() bool {
	req, err := http.NewRequest(http.MethodHead, g.endpoint, nil)
	if err != nil {
		return false
	}
	resp, err := g.client.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return true
}

// --- Null Generator (no-op, used when no document service is configured) ---

type nullGenerator struct{}

// NewNullGenerator creates a no-op generator for environments without a
// document service.
func NewNullGenerator() Generator {
	return &nullGenerator{}
}

func (g *nullGenerator) Generate(ctx context.Context, r *entity.Receipt) error {
	return nil
}

func (g *nullGenerator) IsAvailable() bool {
	return false
}

// NewGeneratorFromConfig creates the appropriate Generator based on type.
//
//	generatorType: "http" or "none"
//	endpoint: URL of the document-generation service for the http type
func NewGeneratorFromConfig(generatorType, endpoint string) (Generator, error) {
	switch generatorType {
	case "http":
		if endpoint == "" {
			return nil, fmt.Errorf("receipt: endpoint is required for http generator type")
		}
		return NewHTTPGenerator(endpoint), nil
	case "none", "":
		return NewNullGenerator(), nil
	default:
		return nil, fmt.Errorf("receipt: unknown generator type %q (use http or none)", generatorType)
	}
}
