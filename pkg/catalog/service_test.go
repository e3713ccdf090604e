package catalog

import (
	"context"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tracklane/tracklane/ent"
	"github.com/tracklane/tracklane/ent/enttest"
	"github.com/tracklane/tracklane/ent/track"
	"github.com/tracklane/tracklane/ent/user"
	"github.com/tracklane/tracklane/pkg/models"
)

func setupTestDB(t *testing.T) (*ent.Client, func()) {
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	return client, func() { client.Close() }
}

func createProducer(t *testing.T, client *ent.Client, email, artistName string) *ent.User {
	t.Helper()
	u, err := client.User.Create().
		SetEmail(email).
		SetPasswordHash("x").
		SetName("Producer").
		SetArtistName(artistName).
		SetRole(user.RoleProducer).
		SetActive(true).
		Save(context.Background())
	require.NoError(t, err)
	return u
}

func createTrack(t *testing.T, client *ent.Client, producerID int, title, genre string, bpm int, status track.Status) *ent.Track {
	t.Helper()
	create := client.Track.Create().
		SetProducerID(producerID).
		SetTitle(title).
		SetStatus(status)
	if genre != "" {
		create.SetGenre(genre)
	}
	if bpm > 0 {
		create.SetBpm(bpm)
	}
	tr, err := create.Save(context.Background())
	require.NoError(t, err)
	return tr
}

func TestList(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	svc := NewService(client, nil)
	ctx := context.Background()
	producer := createProducer(t, client, "beats@example.com", "Nightdrive")

	createTrack(t, client, producer.ID, "Midnight Run", "synthwave", 110, track.StatusPublished)
	createTrack(t, client, producer.ID, "Slow Burn", "lofi", 70, track.StatusPublished)
	createTrack(t, client, producer.ID, "Unfinished Idea", "lofi", 80, track.StatusDraft)
	createTrack(t, client, producer.ID, "Gone Exclusive", "trap", 140, track.StatusExclusivelySold)

	t.Run("only published tracks are listed", func(t *testing.T) {
		resp, err := svc.List(ctx, models.TrackFilters{})
		require.NoError(t, err)
		assert.Equal(t, 2, resp.Total)
		assert.Len(t, resp.Tracks, 2)
		for _, tr := range resp.Tracks {
			assert.Equal(t, "published", tr.Status)
			assert.Equal(t, "Nightdrive", tr.ProducerName)
		}
	})

	t.Run("genre filter", func(t *testing.T) {
		resp, err := svc.List(ctx, models.TrackFilters{Genre: "lofi"})
		require.NoError(t, err)
		require.Len(t, resp.Tracks, 1)
		assert.Equal(t, "Slow Burn", resp.Tracks[0].Title)
	})

	t.Run("bpm range filter", func(t *testing.T) {
		resp, err := svc.List(ctx, models.TrackFilters{MinBPM: 100, MaxBPM: 120})
		require.NoError(t, err)
		require.Len(t, resp.Tracks, 1)
		assert.Equal(t, "Midnight Run", resp.Tracks[0].Title)
	})

	t.Run("title search is case-insensitive", func(t *testing.T) {
		resp, err := svc.List(ctx, models.TrackFilters{Search: "midnight"})
		require.NoError(t, err)
		require.Len(t, resp.Tracks, 1)
		assert.Equal(t, "Midnight Run", resp.Tracks[0].Title)
	})

	t.Run("pagination", func(t *testing.T) {
		resp, err := svc.List(ctx, models.TrackFilters{Limit: 1, Offset: 1})
		require.NoError(t, err)
		assert.Equal(t, 2, resp.Total)
		assert.Len(t, resp.Tracks, 1)
	})
}

func TestCreateAndPublish(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	svc := NewService(client, nil)
	ctx := context.Background()
	producer := createProducer(t, client, "beats@example.com", "Nightdrive")

	t.Run("create starts as draft with default prices", func(t *testing.T) {
		info, err := svc.Create(ctx, producer.ID, models.CreateTrackRequest{
			Title: "New Heat",
			Genre: "trap",
			BPM:   145,
		})
		require.NoError(t, err)
		assert.Equal(t, "draft", info.Status)
		assert.Equal(t, 29.99, info.StandardPrice)
		assert.Equal(t, 299.99, info.ExclusivePrice)
		assert.Equal(t, "Nightdrive", info.ProducerName)
	})

	t.Run("publish makes the track listable", func(t *testing.T) {
		created, err := svc.Create(ctx, producer.ID, models.CreateTrackRequest{Title: "Ship It"})
		require.NoError(t, err)

		published, err := svc.Publish(ctx, producer.ID, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "published", published.Status)

		got, err := svc.Get(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "Ship It", got.Title)
	})

	t.Run("publish rejects other producers", func(t *testing.T) {
		other := createProducer(t, client, "other@example.com", "Someone Else")
		created, err := svc.Create(ctx, producer.ID, models.CreateTrackRequest{Title: "Mine"})
		require.NoError(t, err)

		_, err = svc.Publish(ctx, other.ID, created.ID)
		assert.ErrorIs(t, err, ErrNotOwner)
	})

	t.Run("exclusively sold tracks cannot be republished", func(t *testing.T) {
		tr := createTrack(t, client, producer.ID, "Sold Out", "", 0, track.StatusExclusivelySold)
		_, err := svc.Publish(ctx, producer.ID, tr.ID)
		assert.ErrorIs(t, err, ErrExclusivelySold)
	})
}

func TestMarkExclusivelySold(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	svc := NewService(client, nil)
	ctx := context.Background()
	producer := createProducer(t, client, "beats@example.com", "Nightdrive")
	tr := createTrack(t, client, producer.ID, "Last Copy", "", 0, track.StatusPublished)

	require.NoError(t, svc.MarkExclusivelySold(ctx, tr.ID))

	_, err := svc.Get(ctx, tr.ID)
	assert.True(t, ent.IsNotFound(err))

	reloaded, err := client.Track.Get(ctx, tr.ID)
	require.NoError(t, err)
	assert.Equal(t, track.StatusExclusivelySold, reloaded.Status)
}
