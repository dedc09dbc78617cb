// Package location implements the Location record: a point with a kind
// (customer, restaurant, drone) and an address. Drone locations are mutated
// in place by the movement scheduler as the simulation advances.
package location
