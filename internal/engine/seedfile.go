package engine

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/crmforge-dev/crmforge/pkg/schema"
)

// LoadSeedFile reads a JSON array of customer records to boot the store with,
// replacing the built-in demo dataset. The file is read once at startup and
// never written back; the store stays memory-only.
func LoadSeedFile(path string) ([]schema.Customer, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading seed file %s: %w", path, err)
	}

	var customers []schema.Customer
	if err := json.Unmarshal(content, &customers); err != nil {
		return nil, fmt.Errorf("parsing seed file %s: %w", path, err)
	}

	seen := make(map[int]bool, len(customers))
	for _, c := range customers {
		if c.ID <= 0 {
			return nil, fmt.Errorf("seed file %s: record %q has non-positive id %d", path, c.Email, c.ID)
		}
		if seen[c.ID] {
			return nil, fmt.Errorf("seed file %s: duplicate id %d", path, c.ID)
		}
		seen[c.ID] = true
	}
	return customers, nil
}
