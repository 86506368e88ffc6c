package db

import (
	"strings"

	"gorm.io/gorm"
)

// NotDeleted filters out logically deleted subscribers.
//
//	db.Model(&models.SubscriberModel{}).Scopes(db.NotDeleted()).Count(&count)
func NotDeleted() func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("is_deleted = ?", false)
	}
}

// Paginate applies offset/limit for a 1-based page. A non-positive size disables paging.
func Paginate(page, pageSize int) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if pageSize <= 0 {
			return db
		}
		if page < 1 {
			page = 1
		}
		return db.Offset((page - 1) * pageSize).Limit(pageSize)
	}
}

// NameContains matches a case-insensitive substring of column.
func NameContains(column, term string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if term == "" {
			return db
		}
		return db.Where("LOWER("+column+") LIKE ?", "%"+strings.ToLower(term)+"%")
	}
}
