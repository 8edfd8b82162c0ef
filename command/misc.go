package command

import (
	"context"
	"math"
	"math/rand"
	"strconv"
	"strings"

	"github.com/Knetic/govaluate"
	"github.com/cquest/bagelbot/errs"
	"github.com/cquest/bagelbot/text"
)

func randomIndex(n int) int {
	return rand.Intn(n)
}

// cmdCalc evaluates an arithmetic expression.
func cmdCalc(ctx context.Context, d *Dispatcher, args string) (string, error) {
	if args == "" {
		return "Give me a mathematical expression to evaluate.", nil
	}
	expr, err := govaluate.NewEvaluableExpression(args)
	if err != nil {
		return "", errs.QueryCause(err, "Failed to parse query.")
	}
	// Unbound variables have no value.
	if len(expr.Vars()) > 0 {
		return "No result.", nil
	}
	res, err := expr.Evaluate(map[string]interface{}{})
	if err != nil {
		return "", errs.QueryCause(err, "Failed to parse query.")
	}
	switch v := res.(type) {
	case nil:
		return "No result.", nil
	case float64:
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return "", errs.Query("Attempted to divide by zero.")
		}
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	default:
		return text.Str(v), nil
	}
}

// cmdPick picks one of the " or "-separated choices.
func cmdPick(ctx context.Context, d *Dispatcher, args string) (string, error) {
	if args == "" {
		return `Give me some options to pick between separated with the word "or".`, nil
	}
	choices := strings.Split(args, " or ")
	return "I pick... " + choices[d.choose(len(choices))] + "!", nil
}
