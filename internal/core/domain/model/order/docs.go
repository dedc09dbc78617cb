// Package order implements the Order aggregate: a food order moving from
// placement through preparation and drone delivery to customer confirmation.
// The aggregate owns the order status state machine and the one-time binding
// to its Delivery.
package order
