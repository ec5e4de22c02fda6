package b3folio

// helpers shared by the package tests.

// BRL builds a price or value in the reporting currency.
func BRL(v float64) Money { return M(v, "BRL") }

// buy builds a pure buy transaction.
func buy(ticker string, day Day, quantity, price float64) Transaction {
	return Transaction{
		Ticker:      ticker,
		Day:         day,
		BuyQuantity: Q(quantity),
		BuyPrice:    BRL(price),
	}
}

// sell builds a pure sell transaction.
func sell(ticker string, day Day, quantity, price float64) Transaction {
	return Transaction{
		Ticker:       ticker,
		Day:          day,
		SellQuantity: Q(quantity),
		SellPrice:    BRL(price),
	}
}

// week is a short strictly increasing day sequence used across tests.
var week = []Day{"20240101", "20240102", "20240103", "20240104", "20240105"}
