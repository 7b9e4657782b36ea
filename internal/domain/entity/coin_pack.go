package entity

import "sort"

// CoinPack maps a denomination to a number of coins.
// It is used for bank inventory, tray contents and dispensed change.
type CoinPack map[Denomination]int

// PackEntry is a single denomination/count line of a pack
type PackEntry struct {
	Denomination Denomination `json:"denomination"`
	Count        int          `json:"count"`
}

// Total returns the value of all coins in the pack
func (p CoinPack) Total() int64 {
	var total int64
	for d, count := range p {
		total += d.Value() * int64(count)
	}
	return total
}

// Count returns the number of coins across all denominations
func (p CoinPack) Count() int {
	n := 0
	for _, count := range p {
		n += count
	}
	return n
}

// IsEmpty reports whether the pack holds no coins
func (p CoinPack) IsEmpty() bool {
	for _, count := range p {
		if count > 0 {
			return false
		}
	}
	return true
}

// Clone returns an independent copy
func (p CoinPack) Clone() CoinPack {
	out := make(CoinPack, len(p))
	for d, count := range p {
		out[d] = count
	}
	return out
}

// Entries returns the non-empty lines of the pack, largest denomination first
func (p CoinPack) Entries() []PackEntry {
	entries := make([]PackEntry, 0, len(p))
	for d, count := range p {
		if count <= 0 {
			continue
		}
		entries = append(entries, PackEntry{Denomination: d, Count: count})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Denomination > entries[j].Denomination
	})
	return entries
}

// Covers reports whether every count in other is available in p
func (p CoinPack) Covers(other CoinPack) bool {
	for d, count := range other {
		if count > p[d] {
			return false
		}
	}
	return true
}

// ByValue returns the pack keyed by plain face values
func (p CoinPack) ByValue() map[int64]int {
	out := make(map[int64]int, len(p))
	for d, count := range p {
		if count > 0 {
			out[d.Value()] = count
		}
	}
	return out
}
