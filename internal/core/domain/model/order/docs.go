// Package order provides the Order aggregate root of the fuel ordering workflow.
//
// The package includes:
//   - Order: placed by a user at a station, driven through its lifecycle by the station manager
//   - Status: the state machine guarding every transition
//   - Quote: the frozen price breakdown (subtotal, ten percent service fee, total)
//   - PaymentMethod: cash on delivery or (simulated) online payment
//   - StatusChanged: the domain event recorded on placement and on every transition
//
// Key business rules:
//   - Orders start Pending with no agent and a positive quantity and total
//   - Pending -> Confirmed -> In Progress -> Delivered; Pending, Confirmed or In Progress -> Rejected
//   - Any non-terminal order may be Cancelled
//   - An agent is referenced exactly while the order is In Progress; leaving that state
//     hands the agent id back so the caller can release it
//   - Prices are frozen at placement; later catalog changes do not alter the quote
package order
