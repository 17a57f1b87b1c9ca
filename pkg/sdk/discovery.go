package sdk

import "os"

// DefaultAddr resolves the daemon address from the environment, falling back
// to the daemon's default listen address.
func DefaultAddr() string {
	if addr := os.Getenv("CRM_ADDR"); addr != "" {
		return addr
	}
	return "http://localhost:7002"
}
