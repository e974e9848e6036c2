// Package messaging provides a broker-agnostic API for publishing and
// consuming messages.
//
// The goal is to keep business code independent from the underlying messaging
// system. NATS is the only backend today; use-case code that relies on the
// interfaces in this package does not change if another broker is added.
package messaging
