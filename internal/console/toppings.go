package console

import (
	"fmt"
	"strconv"
	"strings"

	"pizza-palace/internal/diagnostic"
)

// ParseSelection parses a comma-separated topping selection against a
// list of `available` toppings and returns the accepted 1-based indices
// in selection order.
//
// "0" means no toppings. A token that does not parse as an integer
// produces a warning diagnostic (shown to the user) and is skipped; the
// remaining tokens are still processed. An index outside
// [1, available] is dropped with an info diagnostic only.
func ParseSelection(input string, available int) ([]int, *diagnostic.Diagnostics) {
	diags := &diagnostic.Diagnostics{}

	if strings.TrimSpace(input) == "0" {
		return nil, diags
	}

	var indices []int

	for _, raw := range strings.Split(input, ",") {
		tok := strings.TrimSpace(raw)

		n, err := strconv.Atoi(tok)
		if err != nil {
			diags.AddWarning("invalid_topping_token", "Invalid topping choice: "+tok, tok)
			continue
		}

		if n < 1 || n > available {
			diags.AddInfo("topping_index_out_of_range",
				fmt.Sprintf("topping index %d outside 1-%d", n, available), tok)
			continue
		}

		indices = append(indices, n)
	}

	return indices, diags
}
