package util

import (
	"database/sql"
	"strings"
)

// StringToNullString converts a string to sql.NullString.
// An empty string is treated as NULL.
func StringToNullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

// NullStringToString returns "" for NULL.
func NullStringToString(ns sql.NullString) string {
	if !ns.Valid {
		return ""
	}
	return ns.String
}

// ColumnList renders columns as `col "col"` so drivers that upper-case
// unquoted identifiers still scan into lower-case db tags.
func ColumnList(prefix string, columns ...string) string {
	parts := make([]string, len(columns))
	for i, c := range columns {
		name := c
		if prefix != "" {
			name = prefix + "." + c
		}
		parts[i] = name + ` "` + c + `"`
	}
	return strings.Join(parts, ", ")
}
