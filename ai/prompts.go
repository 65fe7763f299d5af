package ai

import "fmt"

// Fixed scenario prompts for the FRAMED game. The exact wording is part of
// the product: the assistant is a non-player observer dropping short remarks.
const (
	// OpeningPrompt seeds the one-time room introduction.
	OpeningPrompt = "A precious artwork has been stolen and there is a single perpetrator among us. " +
		"Players must decide who did it in the game FRAMED. You're an engaged non-player with a twist. " +
		"Roles: detective, doctor, citizen, or thief. Players are unaware of each other's roles. " +
		"Set the context wittily in 20 words or less"

	// ScenarioPrompt is prepended to the recent history for cadence injections.
	ScenarioPrompt = "In the game FRAMED, an art piece has gone missing, and there's a single perpetrator " +
		"among the players. Players take on roles like detective, doctor, citizen, or thief. " +
		"You're a non-player observer here to drop occasionally bold zingers based on the ongoing chat. " +
		"Be bold, be witty, and keep it under 20 words. -"
)

// DeathPrompt builds the elimination-narrative request for a player name.
func DeathPrompt(playerName string) string {
	return fmt.Sprintf("Tell a story about how %s was killed during the night in an art gallery by an art thief in 20 words or less.", playerName)
}
