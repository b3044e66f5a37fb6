package stocktaking

// Variance is the difference between the counted quantity and the
// ledger snapshot. Positive means surplus, negative means shortage.
func Variance(systemStock, physicalStock int) int {
	return physicalStock - systemStock
}
