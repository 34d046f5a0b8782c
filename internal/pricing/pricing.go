// Package pricing selects the unit price that applies to a customer.
//
// Wholesalers pay the wholesale price, everyone else pays retail. Cart
// summaries and order creation must both price through this package so the
// displayed total and the charged total cannot drift apart.
package pricing

import (
	"github.com/shopspring/decimal"

	"commercehub/internal/model"
)

// UnitPrice returns the price per unit of product for the given client type.
func UnitPrice(clientType model.ClientType, product model.Product) decimal.Decimal {
	if clientType == model.ClientTypeWholesaler {
		return product.WholesalePrice
	}
	return product.RetailPrice
}

// LineTotal returns the unit price multiplied by the quantity.
func LineTotal(clientType model.ClientType, product model.Product, quantity int) decimal.Decimal {
	return UnitPrice(clientType, product).Mul(decimal.NewFromInt(int64(quantity)))
}
