package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/breach/internal/domain"
	domainmocks "github.com/mouse-blink/breach/internal/domain/mocks"
	m "github.com/mouse-blink/breach/internal/model"
)

func TestInspectCmd(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	mockWorkflow.EXPECT().Inspect(domain.InspectArgs{Puzzle: "puzzle.yaml"}).Return(nil)

	_, err := runCommand(t, mockWorkflow, newInspectCmd(), "inspect")
	require.NoError(t, err)
}

func TestInspectCmd_Contains(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	mockWorkflow.EXPECT().Inspect(mock.MatchedBy(func(args domain.InspectArgs) bool {
		return args.Contains != nil && *args.Contains == m.Coord{Row: 3, Col: 1}
	})).Return(nil)

	_, err := runCommand(t, mockWorkflow, newInspectCmd(), "inspect", "--contains", "3,1")
	require.NoError(t, err)
}

func TestInspectCmd_BadContains(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	_, err := runCommand(t, mockWorkflow, newInspectCmd(), "inspect", "--contains", "3")
	require.Error(t, err)
}

func TestParseCoord(t *testing.T) {
	tests := []struct {
		in      string
		want    m.Coord
		wantErr bool
	}{
		{"0,1", m.Coord{Row: 0, Col: 1}, false},
		{"4, 2", m.Coord{Row: 4, Col: 2}, false},
		{"1", m.Coord{}, true},
		{"a,1", m.Coord{}, true},
		{"1,-2", m.Coord{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseCoord(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
