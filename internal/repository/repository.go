package repository

import (
	"github.com/AnNhien/companion-service/internal/repository/redisrepo"
	"github.com/AnNhien/companion-service/internal/repository/sheetdb"
	"github.com/redis/go-redis/v9"
)

type Repository struct {
	Sheet *sheetdb.SheetRepository
	Redis *redisrepo.RedisRepository
}

func New(client *sheetdb.Client, rdb *redis.Client) *Repository {
	return &Repository{
		Sheet: sheetdb.New(client),
		Redis: redisrepo.New(rdb),
	}
}
