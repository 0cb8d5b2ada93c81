package application

import "math/rand"

// DefaultUnit is the flat wager used when no policy is configured.
const DefaultUnit = 10

// WagerPolicy sizes the main wager of an automated round from the wallet and
// the previous main wager.
type WagerPolicy func(wallet, lastBet uint32) uint32

// FlatBetting always bets unit, or the whole wallet when it holds less.
func FlatBetting(unit uint32) WagerPolicy {
	return func(wallet, _ uint32) uint32 {
		return min(unit, wallet)
	}
}

// RandomBetting bets a uniform amount between 1 and the wallet.
func RandomBetting(rng *rand.Rand) WagerPolicy {
	return func(wallet, _ uint32) uint32 {
		if wallet == 0 {
			return 0
		}
		return uint32(rng.Int63n(int64(wallet))) + 1
	}
}
