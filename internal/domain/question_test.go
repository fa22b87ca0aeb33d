package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func eventWithAgendaItem(t *testing.T) (*Event, *AgendaItem) {
	t.Helper()
	e := testEvent()
	item := &AgendaItem{Title: "Q&A", StartTime: e.StartDate, EndTime: e.StartDate.Add(time.Hour)}
	require.NoError(t, e.AddAgendaItem(item))
	return e, item
}

func TestEvent_AddQuestion(t *testing.T) {
	e, item := eventWithAgendaItem(t)

	q, err := e.AddQuestion(item.ID, "bob", "What about generics?")
	require.NoError(t, err)
	assert.NotEmpty(t, q.ID)
	assert.Equal(t, "bob", q.AskedBy)
	assert.Equal(t, "What about generics?", q.Text)
	assert.Nil(t, q.Answer)
	assert.Equal(t, 0, q.Upvotes)
	assert.False(t, q.Timestamp.IsZero())
	require.Len(t, item.Questions, 1)

	_, err = e.AddQuestion("missing-item", "bob", "hello?")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestEvent_AnswerQuestion(t *testing.T) {
	e, item := eventWithAgendaItem(t)
	q, err := e.AddQuestion(item.ID, "bob", "When is lunch?")
	require.NoError(t, err)

	answered, err := e.AnswerQuestion(item.ID, q.ID, "At noon.")
	require.NoError(t, err)
	require.NotNil(t, answered.Answer)
	assert.Equal(t, "At noon.", *answered.Answer)

	// answering again replaces the previous answer
	answered, err = e.AnswerQuestion(item.ID, q.ID, "At one.")
	require.NoError(t, err)
	assert.Equal(t, "At one.", *answered.Answer)

	_, err = e.AnswerQuestion(item.ID, "missing-question", "answer")
	require.Error(t, err)
	var nf *NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, "Question", nf.Kind)
}

func TestEvent_UpvoteQuestion(t *testing.T) {
	e, item := eventWithAgendaItem(t)
	q, err := e.AddQuestion(item.ID, "bob", "Will slides be shared?")
	require.NoError(t, err)

	past := time.Now().Add(-time.Hour)
	e.UpdatedAt = past
	for i := 0; i < 3; i++ {
		_, err = e.UpvoteQuestion(item.ID, q.ID)
		require.NoError(t, err)
	}
	assert.Equal(t, 3, q.Upvotes)
	assert.True(t, e.UpdatedAt.After(past))

	_, err = e.UpvoteQuestion(item.ID, "missing-question")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
}
