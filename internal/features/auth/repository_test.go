package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func openSession(startedAt time.Time) Session {
	return Session{StartedAt: startedAt}
}

func closedSession(startedAt time.Time, seconds int64) Session {
	return Session{StartedAt: startedAt, DurationSeconds: &seconds}
}

func TestLoginUpdate_AppendsOneRecordAndOneOpenSession(t *testing.T) {
	record := LoginRecord{
		Timestamp: time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
		IP:        "203.0.113.7",
		UserAgent: "curl/8.0",
	}

	update := loginUpdate(record)

	push, ok := update["$push"].(bson.M)
	require.True(t, ok)
	require.Len(t, push, 2)

	// exactly one history entry, the record itself
	assert.Equal(t, record, push["loginHistory"])

	// exactly one new session, open from the login instant
	session, ok := push["sessions"].(Session)
	require.True(t, ok)
	assert.Equal(t, record.Timestamp, session.StartedAt)
	assert.Nil(t, session.DurationSeconds)

	set, ok := update["$set"].(bson.M)
	require.True(t, ok)
	assert.Equal(t, record.Timestamp, set["lastOnline"])
}

func TestLatestOpenSession(t *testing.T) {
	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	t.Run("no sessions", func(t *testing.T) {
		assert.Equal(t, -1, latestOpenSession(nil))
	})

	t.Run("all closed means logout has nothing to do", func(t *testing.T) {
		sessions := []Session{
			closedSession(base, 60),
			closedSession(base.Add(time.Hour), 30),
		}
		assert.Equal(t, -1, latestOpenSession(sessions))
	})

	t.Run("picks the most recent open session", func(t *testing.T) {
		sessions := []Session{
			openSession(base),
			closedSession(base.Add(time.Hour), 60),
			openSession(base.Add(2 * time.Hour)),
		}
		assert.Equal(t, 2, latestOpenSession(sessions))
	})

	t.Run("recency is by start time, not slice position", func(t *testing.T) {
		sessions := []Session{
			openSession(base.Add(2 * time.Hour)),
			openSession(base),
		}
		assert.Equal(t, 0, latestOpenSession(sessions))
	})

	t.Run("newest session closed, older still open", func(t *testing.T) {
		sessions := []Session{
			openSession(base),
			closedSession(base.Add(time.Hour), 60),
		}
		assert.Equal(t, 0, latestOpenSession(sessions))
	})
}
