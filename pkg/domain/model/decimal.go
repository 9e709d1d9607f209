package model

import "github.com/shopspring/decimal"

func init() {
	// Numeric columns on the data service expect bare JSON numbers,
	// not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}
