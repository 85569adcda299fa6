package repository

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"kounhany-ai-go/internal/model"
)

// SearchCacheRepository is the TTL cache for web search results. Expired
// rows are invisible to readers and reaped by a background sweep.
type SearchCacheRepository interface {
	Get(query string) (*model.SearchCacheEntry, error)
	Put(query, results string, ttl time.Duration) error
	PurgeExpired() (int64, error)
}

type searchCacheRepository struct {
	db *gorm.DB
}

// NewSearchCacheRepository creates a new SearchCacheRepository instance.
func NewSearchCacheRepository(db *gorm.DB) SearchCacheRepository {
	return &searchCacheRepository{db: db}
}

// Get returns the cached entry for the query, or nil when absent or
// already expired.
func (r *searchCacheRepository) Get(query string) (*model.SearchCacheEntry, error) {
	var entry model.SearchCacheEntry
	err := r.db.Where("query = ? AND expires_at > ?", query, time.Now()).
		First(&entry).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *searchCacheRepository) Put(query, results string, ttl time.Duration) error {
	now := time.Now()
	entry := &model.SearchCacheEntry{
		Query:     query,
		Results:   results,
		CachedAt:  now,
		ExpiresAt: now.Add(ttl),
	}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "query"}},
		DoUpdates: clause.AssignmentColumns([]string{"results", "cached_at", "expires_at"}),
	}).Create(entry).Error
}

func (r *searchCacheRepository) PurgeExpired() (int64, error) {
	res := r.db.Where("expires_at <= ?", time.Now()).
		Delete(&model.SearchCacheEntry{})
	return res.RowsAffected, res.Error
}
