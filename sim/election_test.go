package sim

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeElectionFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "election.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadElection(t *testing.T) {
	path := writeElectionFile(t, `
seed: 17
precincts:
  - name: Downtown
    hours_open: 10
    num_voters: 500
    num_booths: 4
    arrival_rate: 0.8
    voting_duration_rate: 0.25
    percent_straight_ticket: 0.4
    straight_ticket_duration: 3
  - name: Lakeview
    hours_open: 12
    num_voters: 1200
    num_booths: 6
    arrival_rate: 1.5
    voting_duration_rate: 0.2
    percent_straight_ticket: 0.6
    straight_ticket_duration: 2.5
`)

	e, err := LoadElection(path)
	require.NoError(t, err)

	assert.Equal(t, int64(17), e.Seed)
	require.Len(t, e.Precincts, 2)
	assert.Equal(t, "Downtown", e.Precincts[0].Name)
	assert.Equal(t, 4, e.Precincts[0].NumBooths)
	assert.Equal(t, 0.8, e.Precincts[0].ArrivalRate)
	assert.Equal(t, "Lakeview", e.Precincts[1].Name)
	assert.Equal(t, 2.5, e.Precincts[1].StraightTicketDuration)
}

func TestLoadElectionMissingFile(t *testing.T) {
	_, err := LoadElection(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading election file")
}

func TestLoadElectionRejectsUnknownFields(t *testing.T) {
	path := writeElectionFile(t, `
seed: 17
precincts:
  - name: Downtown
    hours_open: 10
    num_voters: 500
    num_booths: 4
    arrival_rate: 0.8
    voting_duration_rate: 0.25
    percent_straight_ticket: 0.4
    straight_ticket_duration: 3
    num_poll_workers: 12
`)

	_, err := LoadElection(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing election file")
}

func TestLoadElectionReportsPrecinctIndex(t *testing.T) {
	path := writeElectionFile(t, `
seed: 17
precincts:
  - name: Downtown
    hours_open: 10
    num_voters: 500
    num_booths: 4
    arrival_rate: 0.8
    voting_duration_rate: 0.25
    percent_straight_ticket: 0.4
    straight_ticket_duration: 3
  - name: Lakeview
    hours_open: 12
    num_voters: 1200
    num_booths: 0
    arrival_rate: 1.5
    voting_duration_rate: 0.2
    percent_straight_ticket: 0.6
    straight_ticket_duration: 2.5
`)

	_, err := LoadElection(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "precinct[1]")
	assert.Contains(t, err.Error(), "num_booths must be positive")
}

func TestElectionValidateRejectsEmptyPrecinctList(t *testing.T) {
	e := Election{Seed: 1}
	require.Error(t, e.Validate())
}

func TestElectionValidateRejectsDuplicateNames(t *testing.T) {
	e := Election{
		Seed:      1,
		Precincts: []Precinct{validPrecinct(), validPrecinct()},
	}

	err := e.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `duplicate name "Downtown"`)
}

func TestElectionPrecinctLookup(t *testing.T) {
	lakeview := validPrecinct()
	lakeview.Name = "Lakeview"
	e := Election{Seed: 1, Precincts: []Precinct{validPrecinct(), lakeview}}

	p, err := e.Precinct("Lakeview")
	require.NoError(t, err)
	assert.Equal(t, "Lakeview", p.Name)

	_, err = e.Precinct("Uptown")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `no precinct named "Uptown"`)
}
