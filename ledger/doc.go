// Package ledger keeps the money side of a blackjack session: the player
// wallet, the active wagers and an append-only journal of every transaction.
//
// # Core Components
//
// Ledger: the wallet balance with the main, split and last wagers. Stakes are
// escrowed, i.e. taken out of the wallet, as soon as they are placed or
// doubled. A winning hand gives its stake back.
//
// Journal: an in-memory log of wallet transactions with SHA-256 hash chaining
// for tamper detection.
//
// # Security Properties
//
// The journal provides:
//   - Immutability: recorded blocks are never modified
//   - Verifiability: Verify checks the integrity of the entire chain
//   - Auditability: every bet, double and win of the session is recorded
//
// # Usage
//
// Create a Journal, pass it to New with WithJournal, then use the Ledger
// normally. The Verify method can be called at any time to ensure the chain
// remains intact.
package ledger
