// Package config loads georoute settings.
//
// Sources are applied in order, each overriding the previous one:
//
//  1. Default(): the reference run (pop 150, 15 generations, roulette /
//     cycle / displacement, p_xo 0.8, p_m 0.1, no elitism, seed 12) and the
//     full grid.
//  2. An optional YAML file.
//  3. Environment variables prefixed with GEOROUTE_, e.g.
//     GEOROUTE_RUN_POPULATION_SIZE=80 or GEOROUTE_GRID_SELECTORS=roulette,ranking.
//
// The merged Config is then checked with struct validation plus strategy-name
// lookups against the ga registry.
package config
