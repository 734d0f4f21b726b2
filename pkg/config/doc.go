// Package config loads npaths settings with koanf.
//
// Sources are merged in this order, later ones winning:
//
//  1. embedded defaults (embedded/defaults.toml)
//  2. the config file: --config, $NPATHS_CONFIG or
//     $XDG_CONFIG_HOME/npaths/config.toml
//  3. environment variables, NPATHS_<SECTION>_<KEY> (NPATHS_WALK_MAX_DEPTH)
//  4. command line overrides
//
// Integer depths also accept "unlimited".
package config
