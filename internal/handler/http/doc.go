// Package http serves the read side of the sync bookkeeping over REST.
//
// Downstream consumers poll a mapping's sync state, its deletion ledger and
// the failed items waiting for a retry. Trace ids, access logging and
// request metrics are applied as middleware before a request reaches the
// service layer; /metrics exposes the Prometheus registry.
package http
