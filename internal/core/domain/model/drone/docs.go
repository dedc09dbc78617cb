// Package drone implements the Drone aggregate: a restaurant-operated
// delivery drone with an operational status state machine and a mutable
// pointer to its current Location record. The Idle precondition on
// BeginDelivery is the invariant that keeps each drone on at most one
// active delivery.
package drone
