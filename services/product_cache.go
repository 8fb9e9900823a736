package services

import (
	"encoding/json"
	"log"
	"strings"

	gocache "github.com/patrickmn/go-cache"
	"gorm.io/gorm"

	"github.com/anurudhk499/SafeBite/models"
)

// ProductCache fronts product lookups with an in-process store and an
// optional database write-through. Writes overwrite on collision: two
// requests racing on the same uncached key both fetch and both write the
// same record, so last-write-wins is safe.
type ProductCache struct {
	mem *gocache.Cache
	db  *gorm.DB
}

// NewProductCache builds the cache and warm-loads previously fetched
// products when a database is configured. db may be nil for memory-only
// operation.
func NewProductCache(db *gorm.DB) *ProductCache {
	pc := &ProductCache{
		mem: gocache.New(gocache.NoExpiration, 0),
		db:  db,
	}
	pc.warm()
	return pc
}

// CacheKey is the barcode when present, else the lower-cased name.
func CacheKey(name, barcode string) string {
	if barcode != "" {
		return barcode
	}
	return strings.ToLower(name)
}

func (c *ProductCache) Get(key string) (*models.Product, bool) {
	v, ok := c.mem.Get(key)
	if !ok {
		return nil, false
	}
	p, ok := v.(*models.Product)
	return p, ok
}

func (c *ProductCache) Put(key string, p *models.Product) {
	c.mem.Set(key, p, gocache.NoExpiration)

	if c.db == nil {
		return
	}
	payload, err := json.Marshal(p)
	if err != nil {
		log.Printf("failed to encode cached product %q: %v", key, err)
		return
	}
	var row models.CachedProduct
	err = c.db.
		Where(models.CachedProduct{CacheKey: key}).
		Assign(models.CachedProduct{Payload: string(payload)}).
		FirstOrCreate(&row).Error
	if err != nil {
		log.Printf("failed to persist cached product %q: %v", key, err)
	}
}

// Len reports how many products are cached, for the health endpoints.
func (c *ProductCache) Len() int {
	return c.mem.ItemCount()
}

// Search scans cached products whose name contains the query.
func (c *ProductCache) Search(query string, limit int) []models.ProductHit {
	query = strings.ToLower(query)
	hits := make([]models.ProductHit, 0, limit)
	for _, item := range c.mem.Items() {
		p, ok := item.Object.(*models.Product)
		if !ok || !strings.Contains(strings.ToLower(p.Name), query) {
			continue
		}
		hits = append(hits, models.ProductHit{Name: p.Name, Brand: p.Brand, Image: p.Image})
		if len(hits) >= limit {
			break
		}
	}
	return hits
}

func (c *ProductCache) warm() {
	if c.db == nil {
		return
	}
	var rows []models.CachedProduct
	if err := c.db.Find(&rows).Error; err != nil {
		log.Printf("failed to load product cache: %v", err)
		return
	}
	for i := range rows {
		var p models.Product
		if err := json.Unmarshal([]byte(rows[i].Payload), &p); err != nil {
			continue
		}
		c.mem.Set(rows[i].CacheKey, &p, gocache.NoExpiration)
	}
	log.Printf("loaded %d cached products", len(rows))
}
