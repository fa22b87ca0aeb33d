package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPoll(t *testing.T) {
	tests := []struct {
		name        string
		options     []string
		wantErr     bool
		wantOptions []string
	}{
		{
			name:        "two options",
			options:     []string{"Yes", "No"},
			wantOptions: []string{"Yes", "No"},
		},
		{
			name:        "duplicates collapsed preserving first occurrence order",
			options:     []string{"Go", "Rust", "Go", "Zig", "Rust"},
			wantOptions: []string{"Go", "Rust", "Zig"},
		},
		{
			name:    "single option rejected",
			options: []string{"Yes"},
			wantErr: true,
		},
		{
			name:    "duplicates of one option rejected",
			options: []string{"Yes", "Yes", "Yes"},
			wantErr: true,
		},
		{
			name:    "empty options rejected",
			options: nil,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewPoll("Favorite language?", tt.options)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidInput))
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, p.ID)
			assert.Equal(t, tt.wantOptions, p.Options)
			require.Len(t, p.Votes, len(tt.wantOptions))
			for _, opt := range tt.wantOptions {
				assert.Equal(t, 0, p.Votes[opt])
			}
		})
	}
}

func TestPoll_SubmitVote(t *testing.T) {
	p, err := NewPoll("Attend next year?", []string{"Yes", "No"})
	require.NoError(t, err)

	require.NoError(t, p.SubmitVote("Yes"))
	require.NoError(t, p.SubmitVote("Yes"))
	require.NoError(t, p.SubmitVote("No"))
	assert.Equal(t, 2, p.Votes["Yes"])
	assert.Equal(t, 1, p.Votes["No"])

	err = p.SubmitVote("Maybe")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidInput))
	assert.Equal(t, 2, p.Votes["Yes"])
	assert.Equal(t, 1, p.Votes["No"])
}

func TestEvent_CreatePollAndSubmitVote(t *testing.T) {
	e := testEvent()
	item := &AgendaItem{Title: "Panel", StartTime: e.StartDate, EndTime: e.StartDate.Add(time.Hour)}
	require.NoError(t, e.AddAgendaItem(item))

	p, err := e.CreatePoll(item.ID, "Best session?", []string{"Morning", "Afternoon"})
	require.NoError(t, err)
	require.Len(t, item.Polls, 1)

	past := time.Now().Add(-time.Hour)
	e.UpdatedAt = past
	got, err := e.SubmitVote(item.ID, p.ID, "Morning")
	require.NoError(t, err)
	assert.Equal(t, 1, got.Votes["Morning"])
	assert.True(t, e.UpdatedAt.After(past), "a vote is a visible aggregate change")

	// invalid option leaves counters and UpdatedAt alone
	e.UpdatedAt = past
	_, err = e.SubmitVote(item.ID, p.ID, "Evening")
	require.Error(t, err)
	assert.True(t, e.UpdatedAt.Equal(past))

	_, err = e.SubmitVote(item.ID, "missing-poll", "Morning")
	require.Error(t, err)
	var nf *NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, "Poll", nf.Kind)
}
