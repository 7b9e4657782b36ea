package entity

// DecomposeGreedy expresses amount as coins taken from available.
//
// Denominations are walked strictly largest to smallest and each one contributes
// min(remaining/d, available[d]) coins. There is no backtracking: when a smaller-first
// allocation would succeed but this order leaves a remainder, the decomposition fails.
// Given identical inputs the result is always identical.
//
// available is never modified. A zero amount yields an empty pack.
func DecomposeGreedy(amount int64, available CoinPack) (CoinPack, bool) {
	if amount < 0 {
		return nil, false
	}

	pack := CoinPack{}
	remaining := amount

	for _, d := range DescendingDenominations() {
		if remaining == 0 {
			break
		}

		take := remaining / d.Value()
		if have := int64(available[d]); take > have {
			take = have
		}
		if take <= 0 {
			continue
		}

		pack[d] = int(take)
		remaining -= take * d.Value()
	}

	if remaining != 0 {
		return nil, false
	}
	return pack, true
}
