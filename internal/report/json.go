// Package report renders puzzles and solver results for people and programs.
// It defines the text layout, the JSON response and their encoding.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/ribbit/core/internal/models"
	"github.com/ribbit/core/internal/results"
	"github.com/ribbit/core/internal/search"
)

const serviceName = "ribbit"

type Meta struct {
	Service   string `json:"service"`
	Timestamp string `json:"timestamp"`
	GoVersion string `json:"go_version"`
	NumCPU    int    `json:"num_cpu"`
}

func NewMeta() Meta {
	return Meta{
		Service:   serviceName,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		GoVersion: runtime.Version(),
		NumCPU:    runtime.NumCPU(),
	}
}

type Response struct {
	Meta    Meta            `json:"meta"`
	Letters string          `json:"letters"`
	Graph   models.Stats    `json:"graph"`
	Search  search.Stats    `json:"search"`
	Total   int             `json:"total"`
	Groups  []results.Group `json:"groups"`
	Words   []results.Found `json:"words,omitempty"`
}

// NewResponse summarises a solve. Paths are included when withPaths is set.
func NewResponse(p *models.Puzzle, col *results.Collector, stats search.Stats, withPaths bool) Response {
	resp := Response{
		Meta:    NewMeta(),
		Letters: p.Letters(),
		Graph:   p.Graph.Stats(),
		Search:  stats,
		Total:   col.Len(),
		Groups:  col.Groups(),
	}
	if withPaths {
		resp.Words = col.Found()
	}
	return resp
}

func WriteJSON(w io.Writer, resp Response, pretty bool) error {
	encoder := json.NewEncoder(w)
	if pretty {
		encoder.SetIndent("", "  ")
	}

	if err := encoder.Encode(resp); err != nil {
		return fmt.Errorf("failed to encode response: %w", err)
	}
	return nil
}
