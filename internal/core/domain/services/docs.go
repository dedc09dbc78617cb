// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the dispatch system. It implements workflows
// that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - FleetDispatcher: A domain service pairing preparing orders with idle drones
//   - RoutePlanner: A domain service producing interpolated flight paths
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
