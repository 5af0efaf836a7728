// Package config handles configuration loading and management for affirm.
//
// It provides functionality for:
//   - Loading configuration from .affirm.yaml, .affirm.yml, affirm.yaml or .affirm.json
//   - Default configuration values
//   - Environment overrides (AFFIRM_REPRESENTATION, AFFIRM_UPDATE_SNAPSHOTS,
//     AFFIRM_SNAPSHOT_DIR, NO_COLOR)
package config
