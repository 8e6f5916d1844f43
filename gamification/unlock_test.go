package gamification

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTopicUnlocked(t *testing.T) {
	topics := []TopicStatus{
		{LessonsCompleted: 10, TotalLessons: 10}, // complete
		{LessonsCompleted: 3, TotalLessons: 8},   // in progress
		{LessonsCompleted: 0, TotalLessons: 12},
	}

	assert.True(t, TopicUnlocked(0, topics), "first topic is always unlocked")
	assert.True(t, TopicUnlocked(1, topics), "predecessor complete")
	assert.False(t, TopicUnlocked(2, topics), "predecessor incomplete")

	// Completing topic 0 but not topic 1 must not unlock topic 2: the gate
	// looks only at the immediate predecessor.
	assert.True(t, topics[0].Complete())
	assert.False(t, TopicUnlocked(2, topics))

	// Repeat passes past the total still count as complete.
	topics[1].LessonsCompleted = 16
	assert.True(t, TopicUnlocked(2, topics))

	assert.True(t, TopicUnlocked(0, nil), "empty list trivially unlocked")
	assert.False(t, TopicUnlocked(5, topics), "index beyond list stays locked")
}

func TestTrackUnlocked(t *testing.T) {
	complete := []TopicStatus{
		{LessonsCompleted: 10, TotalLessons: 10},
		{LessonsCompleted: 9, TotalLessons: 8},
	}
	oneShort := []TopicStatus{
		{LessonsCompleted: 10, TotalLessons: 10},
		{LessonsCompleted: 7, TotalLessons: 8},
	}

	assert.True(t, TrackUnlocked(0, nil), "first track is always unlocked")
	assert.True(t, TrackUnlocked(1, complete))
	// A single incomplete topic in the previous track keeps the next track
	// locked: this is an all-of-previous-track gate.
	assert.False(t, TrackUnlocked(1, oneShort))
	assert.True(t, TrackUnlocked(1, []TopicStatus{}), "empty previous track unlocks")
}
