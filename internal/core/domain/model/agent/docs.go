// Package agent provides the Agent aggregate: a delivery worker on a station
// manager's roster.
//
// The package includes:
//   - Agent: identity, owning manager, contact details and availability
//   - Status: Available, Busy or Unavailable
//
// Key business rules:
//   - Agents are created Available and belong to exactly one manager
//   - An agent becomes Busy only by being assigned to a Confirmed order
//   - An agent returns to Available when its order is delivered, rejected or
//     cancelled, or when the reconciliation sweep finds it Busy with no order
//     in progress
//   - An agent referenced by an In Progress order cannot be removed
package agent
