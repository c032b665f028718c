package api

import (
	"github.com/samcharles93/vecop/internal/hwcaps"
	"github.com/samcharles93/vecop/internal/store"
	"github.com/samcharles93/vecop/internal/vecop"
)

// EvaluationRequest is the body of POST /v1/evaluations. Op uses its first
// character, like the command line.
type EvaluationRequest struct {
	Type  string       `json:"type"`
	Op    string       `json:"op"`
	Width int          `json:"width"`
	A     store.Values `json:"a"`
	B     store.Values `json:"b"`
}

type EvaluationList struct {
	Object string             `json:"object"`
	Data   []store.Evaluation `json:"data"`
}

type DeleteEvaluationResp struct {
	ID      string `json:"id"`
	Object  string `json:"object"`
	Deleted bool   `json:"deleted"`
}

type TiersResponse struct {
	Object   string               `json:"object"`
	Host     hwcaps.Features      `json:"host"`
	Compiled []string             `json:"compiled"`
	Routes   []vecop.RouteSummary `json:"routes"`
}
