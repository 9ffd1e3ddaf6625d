// Package services provides domain services that coordinate the Order and Agent
// aggregates where a rule spans both of them.
//
// The package includes:
//   - AgentAssigner: atomically binds an available agent to a confirmed order
//   - AgentReconciler: the idempotent sweep releasing busy agents that no
//     In Progress order references
//
// Both services are pure: they mutate the aggregates handed to them and leave
// persistence and locking to the application layer.
package services
