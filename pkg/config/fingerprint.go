package config

import (
	"encoding/json"
	"fmt"

	"github.com/zeebo/xxh3"

	"github.com/matzehuels/techradar/pkg/radar"
)

// Fingerprint hashes the input part of cfg: every setting and entry, but
// none of the positions, IDs or colours a layout pass fills in. Equal
// fingerprints mean a stored layout can be reused.
func Fingerprint(cfg *radar.Config) string {
	c := *cfg
	c.Entries = make([]radar.Entry, len(cfg.Entries))
	for i, e := range cfg.Entries {
		c.Entries[i] = radar.Entry{
			Quadrant: e.Quadrant,
			Ring:     e.Ring,
			Label:    e.Label,
			Active:   e.Active,
			Moved:    e.Moved,
			Link:     e.Link,
		}
	}
	data, err := json.Marshal(c)
	if err != nil {
		// radar.Config holds only plain data.
		panic(fmt.Sprintf("marshal config: %v", err))
	}
	return fmt.Sprintf("%016x", xxh3.Hash(data))
}
