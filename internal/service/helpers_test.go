package service

import (
	"encoding/json"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/reversi-backend/internal/reversi"
)

// stateFromRows decodes a square board written with '.', 'D' and 'L'.
func stateFromRows(t *testing.T, active string, rows ...string) *reversi.State {
	t.Helper()

	cells := make([]string, 0, len(rows)*len(rows))
	for _, row := range rows {
		require.Len(t, row, len(rows))
		for _, mark := range row {
			switch mark {
			case 'D':
				cells = append(cells, "1")
			case 'L':
				cells = append(cells, "2")
			default:
				cells = append(cells, "0")
			}
		}
	}

	payload := `{"size":` + strconv.Itoa(len(rows)) + `,"cells":[` + strings.Join(cells, ",") + `],"active":"` + active + `"}`

	var state reversi.State
	require.NoError(t, json.Unmarshal([]byte(payload), &state))

	return &state
}
