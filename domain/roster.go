package domain

import "framed-chat/errors"

// PlayerNames is the fixed display-name roster used by the elimination flow.
// Clients address players by index into this list.
var PlayerNames = []string{"Soup Enjoyer", "Pineapple Guy", "Zippy", "Dizzy Dan"}

// PlayerName resolves a roster index to a display name.
// Out-of-range indexes are rejected instead of panicking.
func PlayerName(index int) (string, error) {
	if index < 0 || index >= len(PlayerNames) {
		return "", errors.ErrParticipantIndex
	}
	return PlayerNames[index], nil
}
