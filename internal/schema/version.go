package schema

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
)

// ComputeVersion returns a deterministic version for cfg.
// Priority: user-provided cfg.Version, else the first 8 bytes of
// SHA256(config JSON) in hex. The Version field itself is excluded from the hash.
func ComputeVersion(cfg *CircuitConfig) string {
	if cfg.Version != "" {
		return cfg.Version
	}

	data, err := json.Marshal(cfg)
	if err != nil {
		// Fallback (should not happen, the config holds only strings and bools)
		return "invalid"
	}

	hash := sha256.Sum256(data)
	return fmt.Sprintf("%x", hash[:8])
}
