package database

import (
	"strings"

	"gorm.io/gorm"

	"github.com/yukikurage/todolist-api/internal/utils"
)

// Paginate applies pagination to a GORM query
func Paginate(params utils.PaginationParams) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(params.Offset).Limit(params.Limit)
	}
}

// OwnedBy restricts a query to rows owned by userID.
func OwnedBy(userID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("user_id = ?", userID)
	}
}

// likeEscape is accepted as an ESCAPE character by sqlite, postgres and mysql
// without any quoting differences.
const likeEscape = "!"

// MatchText matches search case-insensitively as a literal substring of the
// title or the description.
func MatchText(search string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		lower := lowerFunc(db)
		pattern := "%" + EscapeLike(strings.ToLower(search)) + "%"
		return db.Where(
			"("+lower+"(title) LIKE ? ESCAPE '"+likeEscape+"' OR "+lower+"(description) LIKE ? ESCAPE '"+likeEscape+"')",
			pattern, pattern,
		)
	}
}

// lowerFunc names the SQL function that folds case the way strings.ToLower
// does. postgres and mysql (utf8mb4) LOWER are Unicode aware.
func lowerFunc(db *gorm.DB) string {
	if db.Dialector != nil && db.Dialector.Name() == "sqlite" {
		return sqliteLowerFunc
	}
	return "LOWER"
}

// EscapeLike escapes LIKE wildcards so the value is matched literally.
func EscapeLike(value string) string {
	r := strings.NewReplacer(
		likeEscape, likeEscape+likeEscape,
		"%", likeEscape+"%",
		"_", likeEscape+"_",
	)
	return r.Replace(value)
}
