package model

import "time"

// SearchCacheEntry caches serialized web-search results per lowercased query.
// An entry is valid only while now < ExpiresAt; expired rows are ignored on
// read and removed by the periodic sweep.
type SearchCacheEntry struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Query     string    `gorm:"uniqueIndex;size:512;not null" json:"query"`
	Results   string    `gorm:"type:text;not null" json:"results"`
	CachedAt  time.Time `json:"cachedAt"`
	ExpiresAt time.Time `gorm:"index" json:"expiresAt"`
}

func (SearchCacheEntry) TableName() string {
	return "search_cache"
}
