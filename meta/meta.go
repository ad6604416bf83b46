// meta/meta.go
package meta

// MAX_ATTEMPTS defines how many moves a player may propose per turn before the engine gives up.
const MAX_ATTEMPTS = 3

// DEFAULT_SEED defines the seed for random players when none is configured.
const DEFAULT_SEED = 1

// SELF_PLAY_GAMES defines the number of games in a self-play run.
const SELF_PLAY_GAMES = 10
