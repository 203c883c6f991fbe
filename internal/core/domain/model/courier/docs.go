// Package courier contains the Courier aggregate.
//
// A courier carries a workload counter (activeOrders) from which the
// availability status is derived: busy while at least one assigned order is
// undelivered, active otherwise. Assignment and release go through
// AcceptOrder and ReleaseOrder so the counter and status can never disagree.
package courier
