// Package batch analyzes several beams in one request.
package batch

import (
	"fmt"

	"Girder/internal/calc/analysis"
)

type Input struct {
	Items []analysis.Input `json:"items"`
}

type Result struct {
	Count   int               `json:"count"`
	Results []analysis.Result `json:"results"`
}

// Calculate runs every item through the analysis, failing on the first
// invalid one so a bad batch never returns partial output.
func Calculate(in Input) (Result, error) {
	if len(in.Items) == 0 {
		return Result{}, fmt.Errorf("no items")
	}
	out := Result{Results: make([]analysis.Result, 0, len(in.Items))}
	for i, item := range in.Items {
		res, err := analysis.Calculate(item)
		if err != nil {
			return Result{}, fmt.Errorf("item %d: %w", i, err)
		}
		out.Results = append(out.Results, res)
	}
	out.Count = len(out.Results)
	return out, nil
}
