package utils

import (
	"database/sql"
)

const TimeLayout = "2006-01-02 15:04:05"

func NullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

func NullTimeToString(nt sql.NullTime) string {
	if nt.Valid {
		return nt.Time.Local().Format(TimeLayout)
	}
	return ""
}

func NullInt64ToPtr(ni sql.NullInt64) *int64 {
	if ni.Valid {
		v := ni.Int64
		return &v
	}
	return nil
}
