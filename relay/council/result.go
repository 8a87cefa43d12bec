package council

import (
	"sort"
	"time"

	"github.com/llm-council/council-relay/relay/model"
)

// Result is either a success payload or a failure marker for one model, never both.
type Result struct {
	Model    string
	Response *model.QueryResult
	Err      *QueryError
	Duration time.Duration
}

// OK reports whether the model answered.
func (r Result) OK() bool {
	return r.Err == nil && r.Response != nil
}

// ResultMap maps every requested model identifier to its Result.
type ResultMap map[string]Result

// Responses returns the payloads keyed by model, with nil for every model that failed.
func (m ResultMap) Responses() map[string]*model.QueryResult {
	out := make(map[string]*model.QueryResult, len(m))
	for id, r := range m {
		if r.OK() {
			out[id] = r.Response
			continue
		}
		out[id] = nil
	}
	return out
}

// Succeeded lists the models that answered, sorted.
func (m ResultMap) Succeeded() []string {
	var ids []string
	for id, r := range m {
		if r.OK() {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}

// Failed lists the models that produced no result, sorted.
func (m ResultMap) Failed() []string {
	var ids []string
	for id, r := range m {
		if !r.OK() {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}
