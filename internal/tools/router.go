package tools

import (
	"context"
	"fmt"
	"time"

	"github.com/effective-security/xlog"
	"yfmcp/internal/provider"
)

var logger = xlog.NewPackageLogger("yfmcp", "tools")

// Operation names.
const (
	OpTickerInfo   = "get_ticker_info"
	OpTickerNews   = "get_ticker_news"
	OpSearch       = "search"
	OpTop          = "get_top"
	OpPriceHistory = "get_price_history"
	OpProfitLoss   = "calculate_profit_loss"
)

// Request names an operation and carries its arguments.
type Request struct {
	Name string
	Args Args
}

// Param describes one argument of an operation.
type Param struct {
	Name        string   `json:"name"`
	Type        string   `json:"type"` // "string" or "integer"
	Description string   `json:"description,omitempty"`
	Required    bool     `json:"required,omitempty"`
	Default     any      `json:"default,omitempty"`
	Enum        []string `json:"enum,omitempty"`
}

// Definition describes an operation for the transports.
type Definition struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Params      []Param `json:"params"`
}

type handler func(ctx context.Context, args Args) (Result, error)

type operation struct {
	def Definition
	run handler
}

// Router maps operation names to provider calls and shapes their output.
type Router struct {
	provider provider.Provider
	ops      map[string]operation
	order    []string
}

// New returns a Router serving every operation over p.
func New(p provider.Provider) *Router {
	r := &Router{
		provider: p,
		ops:      make(map[string]operation),
	}
	r.register(tickerInfoDef, r.tickerInfo)
	r.register(tickerNewsDef, r.tickerNews)
	r.register(searchDef, r.search)
	r.register(topDef, r.top)
	r.register(priceHistoryDef, r.priceHistory)
	r.register(profitLossDef, r.profitLoss)
	return r
}

func (r *Router) register(def Definition, run handler) {
	r.ops[def.Name] = operation{def: def, run: run}
	r.order = append(r.order, def.Name)
}

// Definitions returns the operation catalogue in registration order.
func (r *Router) Definitions() []Definition {
	defs := make([]Definition, 0, len(r.order))
	for _, name := range r.order {
		defs = append(defs, r.ops[name].def)
	}
	return defs
}

// Dispatch runs the named operation. Failures, including provider faults
// and panics, are returned as a failed Result.
func (r *Router) Dispatch(ctx context.Context, req Request) (res Result) {
	op, ok := r.ops[req.Name]
	if !ok {
		logger.ContextKV(ctx, xlog.WARNING, "reason", "unknown_operation", "operation", req.Name)
		return failure(newError(KindUnknownOperation, "unknown tool %q", req.Name))
	}

	start := time.Now()
	defer func() {
		if rec := recover(); rec != nil {
			res = Result{Kind: KindProvider, Text: fmt.Sprintf("internal error: %v", rec)}
		}
		if res.IsError() {
			logger.ContextKV(ctx, xlog.ERROR,
				"operation", req.Name,
				"kind", res.Kind,
				"err", res.Text,
				"duration", time.Since(start))
			return
		}
		logger.ContextKV(ctx, xlog.DEBUG,
			"operation", req.Name,
			"duration", time.Since(start))
	}()

	args := req.Args
	if args == nil {
		args = Args{}
	}
	out, err := op.run(ctx, args)
	if err != nil {
		return failure(err)
	}
	return out
}
