package model

// SaleEvent is one append-only ledger record: a pass issuance or an upgrade.
// Never mutated after being recorded.
type SaleEvent struct {
	Date     string  `json:"date" bson:"date"`
	Category string  `json:"category" bson:"category"`
	Amount   float64 `json:"amount" bson:"amount"`
}
