package gamification

// TopicStatus pairs a topic's completion counter with its lesson total, in
// order_index order.
type TopicStatus struct {
	LessonsCompleted int
	TotalLessons     int
}

// Complete reports whether the topic counts as individually complete.
// Repeat passes can push LessonsCompleted past TotalLessons.
func (s TopicStatus) Complete() bool {
	return s.LessonsCompleted >= s.TotalLessons
}

// TopicUnlocked reports whether the topic at index is unlocked within its
// track. The first topic is always unlocked; any later topic depends only on
// its immediate predecessor being complete. This is deliberately weaker than
// the track gate.
func TopicUnlocked(index int, topics []TopicStatus) bool {
	if index <= 0 {
		return true
	}
	if index >= len(topics) {
		return false
	}
	return topics[index-1].Complete()
}

// TrackUnlocked reports whether a track is unlocked given the topic statuses
// of the preceding track. The first track is always unlocked; every topic in
// the previous track must be individually complete, not just an aggregate
// count. An empty previous track trivially unlocks the next one.
func TrackUnlocked(index int, previousTrackTopics []TopicStatus) bool {
	if index <= 0 {
		return true
	}
	for _, s := range previousTrackTopics {
		if !s.Complete() {
			return false
		}
	}
	return true
}
