package store

import (
	sq "github.com/Masterminds/squirrel"
)

const sessionTable = "session"

// SQLite understands the default "?" placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func selectValueQuery(key string) (string, []any, error) {
	return psql.Select("value").
		From(sessionTable).
		Where(sq.Eq{"key": key}).
		ToSql()
}

func upsertValueQuery(key, value string) (string, []any, error) {
	return psql.Insert(sessionTable).
		Columns("key", "value", "updated_at").
		Values(key, value, sq.Expr("CURRENT_TIMESTAMP")).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
}

func deleteValueQuery(key string) (string, []any, error) {
	return psql.Delete(sessionTable).
		Where(sq.Eq{"key": key}).
		ToSql()
}
