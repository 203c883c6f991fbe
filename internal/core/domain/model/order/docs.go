// Package order contains the Order aggregate: the canonical record every
// intake path (platform webhook or manual entry) converges to, together with
// the lifecycle Status state machine and the Item line value object.
package order
