package models

import "gorm.io/gorm"

// CachedProduct is the durable row behind the product lookup cache.
// CacheKey is the barcode or the lower-cased product name; Payload is the
// JSON-encoded Product record.
type CachedProduct struct {
	gorm.Model
	CacheKey string `gorm:"type:varchar(255);uniqueIndex;not null"`
	Payload  string `gorm:"type:text;not null"`
}
