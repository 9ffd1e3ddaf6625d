// Package kernel holds the value objects shared by every aggregate of the fuel
// delivery domain: identifiers (UUID), money and fuel volumes backed by
// shopspring/decimal (Money, Quantity) and fuel grades (FuelType).
//
// All of them are immutable and reject invalid input at construction time.
package kernel
