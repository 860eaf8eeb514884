package repository

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/yamori/recipebook/internal/domain"
	"github.com/yamori/recipebook/internal/infra/database/models"
)

const tokenCacheTTL = 24 * time.Hour

// TokenRepository persists bearer tokens in postgres with a redis
// read-through cache in front.
type TokenRepository struct {
	db  *gorm.DB
	rdb *redis.Client
}

func NewTokenRepository(db *gorm.DB, rdb *redis.Client) *TokenRepository {
	return &TokenRepository{db: db, rdb: rdb}
}

func (r *TokenRepository) Store(ctx context.Context, token string, userID int64) error {
	row := models.AuthToken{
		Token:  token,
		UserID: userID,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return err
	}

	r.rdb.Set(ctx, cacheKey(token), userID, tokenCacheTTL)
	return nil
}

func (r *TokenRepository) Resolve(ctx context.Context, token string) (int64, error) {
	cached, err := r.rdb.Get(ctx, cacheKey(token)).Result()
	if err == nil {
		userID, err := strconv.ParseInt(cached, 10, 64)
		if err == nil {
			return userID, nil
		}
	}

	var row models.AuthToken
	err = r.db.WithContext(ctx).
		Where("token = ?", token).
		Take(&row).Error
	if err != nil {
		return 0, domain.ErrInvalidCredentials
	}

	r.rdb.Set(ctx, cacheKey(token), row.UserID, tokenCacheTTL)
	return row.UserID, nil
}

func cacheKey(token string) string {
	return "authtoken:" + token
}
