package textfile

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadParsesOneTripPerLine(t *testing.T) {
	data := "0 1 1 4\n1 2 5 9\n# a comment\n\n2 3 10 14\n"
	tt, err := Load(strings.NewReader(data))
	require.NoError(t, err)
	require.Len(t, tt.Trips, 3)

	conns := tt.Connections()
	require.Len(t, conns, 3)
	for _, c := range conns {
		require.Equal(t, c.TripID, tt.Trips[c.TripID].ID)
		require.Len(t, tt.Trips[c.TripID].Connections, 1)
	}
}

func TestLoadRejectsMalformedLine(t *testing.T) {
	_, err := Load(strings.NewReader("0 1 2\n"))
	require.Error(t, err)
}

func TestLoadDefaultsSelfLoopToZero(t *testing.T) {
	tt, err := Load(strings.NewReader("0 1 1 4\n"))
	require.NoError(t, err)
	found := false
	for _, fp := range tt.Footpaths[0] {
		if fp.From == 0 && fp.To == 0 {
			found = true
			require.Equal(t, int64(0), fp.Duration)
		}
	}
	require.True(t, found)
}
