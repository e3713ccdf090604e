package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/tracklane/tracklane/ent"
	"github.com/tracklane/tracklane/ent/track"
	"github.com/tracklane/tracklane/ent/user"
	"github.com/tracklane/tracklane/pkg/cache"
	"github.com/tracklane/tracklane/pkg/models"
)

const listCacheTTL = 5 * time.Minute

var (
	// ErrNotOwner is returned when a producer touches a track they don't own.
	ErrNotOwner = errors.New("track belongs to another producer")
	// ErrExclusivelySold is returned when a delisted track is republished.
	ErrExclusivelySold = errors.New("track has been sold exclusively and is delisted")
)

// Service handles track catalog business logic
type Service struct {
	db    *ent.Client
	cache *cache.Client
}

// NewService creates a new catalog service
func NewService(db *ent.Client, cache *cache.Client) *Service {
	return &Service{
		db:    db,
		cache: cache,
	}
}

// List returns published tracks matching the filters, with pagination.
// Exclusively sold tracks are delisted and never appear here.
func (s *Service) List(ctx context.Context, filters models.TrackFilters) (*models.TrackListResponse, error) {
	if filters.Limit <= 0 {
		filters.Limit = 50
	}
	if filters.Limit > 100 {
		filters.Limit = 100
	}
	if filters.Offset < 0 {
		filters.Offset = 0
	}

	cacheKey := s.listCacheKey(filters)
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, cacheKey); err == nil && cached != "" {
			var response models.TrackListResponse
			if err := json.Unmarshal([]byte(cached), &response); err == nil {
				return &response, nil
			}
		}
	}

	query := s.db.Track.Query().
		Where(track.StatusEQ(track.StatusPublished))

	if filters.Genre != "" {
		query = query.Where(track.GenreEQ(filters.Genre))
	}
	if filters.Search != "" {
		query = query.Where(track.TitleContainsFold(filters.Search))
	}
	if filters.MinBPM > 0 {
		query = query.Where(track.BpmGTE(filters.MinBPM))
	}
	if filters.MaxBPM > 0 {
		query = query.Where(track.BpmLTE(filters.MaxBPM))
	}

	total, err := query.Clone().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("counting tracks: %w", err)
	}

	tracks, err := query.
		WithProducer().
		Order(ent.Desc(track.FieldCreatedAt)).
		Limit(filters.Limit).
		Offset(filters.Offset).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing tracks: %w", err)
	}

	response := &models.TrackListResponse{
		Tracks: make([]models.TrackInfo, 0, len(tracks)),
		Total:  total,
		Limit:  filters.Limit,
		Offset: filters.Offset,
	}
	for _, t := range tracks {
		response.Tracks = append(response.Tracks, trackInfo(t))
	}

	if s.cache != nil {
		if data, err := json.Marshal(response); err == nil {
			_ = s.cache.Set(ctx, cacheKey, string(data), listCacheTTL)
		}
	}

	return response, nil
}

// Get returns a single published track by ID.
func (s *Service) Get(ctx context.Context, id int) (*models.TrackInfo, error) {
	t, err := s.db.Track.Query().
		Where(track.IDEQ(id), track.StatusEQ(track.StatusPublished)).
		WithProducer().
		Only(ctx)
	if err != nil {
		return nil, err
	}
	info := trackInfo(t)
	return &info, nil
}

// Create adds a new draft track for the producer.
func (s *Service) Create(ctx context.Context, producerID int, req models.CreateTrackRequest) (*models.TrackInfo, error) {
	producer, err := s.db.User.Query().
		Where(user.IDEQ(producerID), user.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading producer: %w", err)
	}

	create := s.db.Track.Create().
		SetProducerID(producer.ID).
		SetTitle(req.Title).
		SetStatus(track.StatusDraft)
	if req.Genre != "" {
		create.SetGenre(req.Genre)
	}
	if req.BPM > 0 {
		create.SetBpm(req.BPM)
	}
	if req.StandardPrice > 0 {
		create.SetStandardPrice(req.StandardPrice)
	}
	if req.ExclusivePrice > 0 {
		create.SetExclusivePrice(req.ExclusivePrice)
	}

	t, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("creating track: %w", err)
	}

	t.Edges.Producer = producer
	info := trackInfo(t)
	return &info, nil
}

// Publish moves a draft track into the public catalog. Only the owning
// producer may publish, and exclusively sold tracks stay delisted.
func (s *Service) Publish(ctx context.Context, producerID, trackID int) (*models.TrackInfo, error) {
	t, err := s.db.Track.Query().
		Where(track.IDEQ(trackID)).
		WithProducer().
		Only(ctx)
	if err != nil {
		return nil, err
	}
	if t.ProducerID != producerID {
		return nil, ErrNotOwner
	}
	if t.Status == track.StatusExclusivelySold {
		return nil, ErrExclusivelySold
	}

	t, err = s.db.Track.UpdateOneID(trackID).
		SetStatus(track.StatusPublished).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("publishing track: %w", err)
	}

	s.invalidateListings(ctx)

	t.Edges.Producer, _ = s.db.User.Get(ctx, t.ProducerID)
	info := trackInfo(t)
	return &info, nil
}

// MarkExclusivelySold delists a track after an exclusive license sale.
func (s *Service) MarkExclusivelySold(ctx context.Context, trackID int) error {
	err := s.db.Track.UpdateOneID(trackID).
		SetStatus(track.StatusExclusivelySold).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delisting track %d: %w", trackID, err)
	}
	s.invalidateListings(ctx)
	return nil
}

func (s *Service) invalidateListings(ctx context.Context) {
	if s.cache != nil {
		_ = s.cache.DeletePattern(ctx, "catalog:list:*")
	}
}

func (s *Service) listCacheKey(f models.TrackFilters) string {
	return fmt.Sprintf("catalog:list:%s:%s:%d:%d:%d:%d",
		f.Genre, f.Search, f.MinBPM, f.MaxBPM, f.Limit, f.Offset)
}

func trackInfo(t *ent.Track) models.TrackInfo {
	info := models.TrackInfo{
		ID:             t.ID,
		ProducerID:     t.ProducerID,
		Title:          t.Title,
		Genre:          t.Genre,
		BPM:            t.Bpm,
		StandardPrice:  t.StandardPrice,
		ExclusivePrice: t.ExclusivePrice,
		Status:         string(t.Status),
	}
	if p := t.Edges.Producer; p != nil {
		name := p.ArtistName
		if name == "" {
			name = p.Name
		}
		info.ProducerName = name
	}
	return info
}
