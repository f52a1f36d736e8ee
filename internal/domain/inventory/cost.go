package inventory

import "github.com/shopspring/decimal"

// WeightedAverageCost recalcula el costo promedio ponderado de un componente
// tras una recepción: (stockActual×costoActual + qtyEntrante×costoEntrante) /
// (stockActual + qtyEntrante). Si el stock resultante es cero o negativo,
// devuelve el costo entrante.
func WeightedAverageCost(currentQty, currentCost, incomingQty, incomingCost decimal.Decimal) decimal.Decimal {
	totalQty := currentQty.Add(incomingQty)
	if !totalQty.IsPositive() {
		return incomingCost
	}
	currentValue := currentQty.Mul(currentCost)
	incomingValue := incomingQty.Mul(incomingCost)
	return currentValue.Add(incomingValue).Div(totalQty)
}
