package domain

import (
	"testing"

	"github.com/stretchr/testify/require"

	"framed-chat/errors"
)

func TestPlayerName_Valid_Index(t *testing.T) {
	req := require.New(t)

	name, err := PlayerName(0)
	req.NoError(err)
	req.Equal(PlayerNames[0], name)

	name, err = PlayerName(len(PlayerNames) - 1)
	req.NoError(err)
	req.Equal(PlayerNames[len(PlayerNames)-1], name)
}

func TestPlayerName_Out_Of_Range(t *testing.T) {
	req := require.New(t)

	_, err := PlayerName(-1)
	req.ErrorIs(err, errors.ErrParticipantIndex)

	_, err = PlayerName(len(PlayerNames))
	req.ErrorIs(err, errors.ErrParticipantIndex)
}
