// Package station holds the manager-owned station and its fuel inventory ledger.
//
// A station is registered once with its declared fuel types; registration seeds
// one inventory row per fuel type at DefaultSeedQuantity and DefaultSeedPrice.
// Afterwards only the manager's explicit quantity updates change the ledger.
package station
