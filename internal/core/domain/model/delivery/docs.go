// Package delivery implements the Delivery aggregate: the durable record
// tracking one drone-order pairing's trip from dispatch to confirmation.
package delivery
