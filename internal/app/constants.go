package app

// MinPlayersToStart defines the minimum number of occupied seats required to
// start a party. Kept centralized so tests or local runs can adjust the rule
// without touching multiple call sites.
const MinPlayersToStart = 2
