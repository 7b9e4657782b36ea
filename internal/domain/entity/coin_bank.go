package entity

// CoinBank is the machine's own coin reserve.
// Counts never go negative: withdrawals are all-or-nothing.
type CoinBank struct {
	coins CoinPack
}

// NewCoinBank creates a bank holding the seed inventory.
// Invalid denominations and non-positive counts in the seed are ignored.
func NewCoinBank(seed CoinPack) *CoinBank {
	b := &CoinBank{coins: CoinPack{}}
	for _, d := range allowedDenominations {
		b.coins[d] = 0
	}
	b.Deposit(seed)
	return b
}

// Deposit adds every coin of pack to the bank.
// Callers validate denominations; lines that would break the bank invariants are skipped.
func (b *CoinBank) Deposit(pack CoinPack) {
	for d, count := range pack {
		if !d.IsValid() || count <= 0 {
			continue
		}
		b.coins[d] += count
	}
}

// CanHold reports whether depositing pack keeps every line within MaxQuantity
func (b *CoinBank) CanHold(pack CoinPack) bool {
	for d, count := range pack {
		if !d.IsValid() || count <= 0 {
			continue
		}
		if count > MaxQuantity-b.coins[d] {
			return false
		}
	}
	return true
}

// TryWithdraw removes coins worth exactly amount using the greedy decomposition.
// On failure the bank is left untouched and (nil, false) is returned.
func (b *CoinBank) TryWithdraw(amount int64) (CoinPack, bool) {
	pack, ok := DecomposeGreedy(amount, b.coins)
	if !ok {
		return nil, false
	}

	for d, count := range pack {
		b.coins[d] -= count
	}
	return pack, true
}

// CanRepresent reports whether TryWithdraw(amount) would succeed right now.
// It runs against a throwaway copy of the inventory.
func (b *CoinBank) CanRepresent(amount int64) bool {
	_, ok := DecomposeGreedy(amount, b.coins.Clone())
	return ok
}

// Snapshot returns a copy of the current inventory
func (b *CoinBank) Snapshot() CoinPack {
	return b.coins.Clone()
}

// Total returns the value of all coins in the bank
func (b *CoinBank) Total() int64 {
	return b.coins.Total()
}
