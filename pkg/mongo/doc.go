// Package mongo opens MongoDB clients with the official v2 driver, retrying
// until the deployment answers a ping, and exposes a readiness check.
package mongo
