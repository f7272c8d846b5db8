package database

import (
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

// CatalogStats holds the record count per kind.
type CatalogStats struct {
	Albums      int64 `json:"albums"`
	Tracks      int64 `json:"tracks"`
	BlogPosts   int64 `json:"blog_posts"`
	MerchItems  int64 `json:"merch_items"`
	Subscribers int64 `json:"subscribers"`
}

// GetCatalogStats counts the records of every kind in one pass over the
// catalog tables. It runs against the raw *sql.DB underneath GORM.
func GetCatalogStats(db *sql.DB) (CatalogStats, error) {
	var stats CatalogStats

	counts := []struct {
		table string
		dest  *int64
	}{
		{"albums", &stats.Albums},
		{"tracks", &stats.Tracks},
		{"blog_posts", &stats.BlogPosts},
		{"merch_items", &stats.MerchItems},
		{"subscribers", &stats.Subscribers},
	}

	for _, c := range counts {
		n, err := countTable(db, c.table)
		if err != nil {
			return CatalogStats{}, err
		}
		*c.dest = n
	}
	return stats, nil
}

func countTable(db *sql.DB, table string) (int64, error) {
	queryBuilder := psql.Select("COUNT(*)").From(table)

	sqlStr, args, err := queryBuilder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build SQL query for counting %s: %w", table, err)
	}

	var count int64
	if err := db.QueryRow(sqlStr, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count rows in %s: %w", table, err)
	}
	return count, nil
}
