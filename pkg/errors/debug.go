package errors

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

// ErrorDump is the server-side view of a failed request: the wrap chain plus
// whatever the database reported.
type ErrorDump struct {
	TopMessage string `json:"top_message"`
	Code       Code   `json:"code,omitempty"`

	Chain []string `json:"chain,omitempty"`

	PGCode       string `json:"pg_code,omitempty"`
	PGConstraint string `json:"pg_constraint,omitempty"`
	PGTable      string `json:"pg_table,omitempty"`
	PGColumn     string `json:"pg_column,omitempty"`
	PGDetail     string `json:"pg_detail,omitempty"`
	PGMessage    string `json:"pg_message,omitempty"`

	// UniqueKey names the live-row key a conflict collided with, as
	// "table.key" (role.nom, user_admin.username, ...).
	UniqueKey string `json:"unique_key,omitempty"`
}

const (
	liveIndexPrefix = "ux_"
	liveIndexSuffix = "_live"
	sqliteUnique    = "UNIQUE constraint failed: "
)

func Dump(err error) ErrorDump {
	if err == nil {
		return ErrorDump{}
	}

	d := ErrorDump{TopMessage: err.Error()}
	if te := As(err); te != nil {
		d.Code = te.Code()
	}
	for e := err; e != nil; e = errors.Unwrap(e) {
		d.Chain = append(d.Chain, fmt.Sprintf("%T: %v", e, e))
	}

	var pgxErr *pgconn.PgError
	var pqErr *pq.Error
	switch {
	case errors.As(err, &pgxErr):
		d.PGCode = pgxErr.Code
		d.PGConstraint = pgxErr.ConstraintName
		d.PGTable = pgxErr.TableName
		d.PGColumn = pgxErr.ColumnName
		d.PGDetail = pgxErr.Detail
		d.PGMessage = pgxErr.Message
	case errors.As(err, &pqErr):
		d.PGCode = string(pqErr.Code)
		d.PGConstraint = pqErr.Constraint
		d.PGTable = pqErr.Table
		d.PGColumn = pqErr.Column
		d.PGDetail = pqErr.Detail
		d.PGMessage = pqErr.Message
	}

	d.UniqueKey = uniqueKey(d, err)
	return d
}

// Fields flattens the dump for structured logging, skipping empty values.
func (d ErrorDump) Fields() map[string]any {
	fields := map[string]any{}
	add := func(key, value string) {
		if value != "" {
			fields[key] = value
		}
	}
	add("error_code", string(d.Code))
	add("pg_code", d.PGCode)
	add("pg_constraint", d.PGConstraint)
	add("pg_table", d.PGTable)
	add("pg_column", d.PGColumn)
	add("pg_detail", d.PGDetail)
	add("pg_message", d.PGMessage)
	add("unique_key", d.UniqueKey)
	if len(d.Chain) > 0 {
		fields["error_chain"] = d.Chain
	}
	return fields
}

// uniqueKey reads the partial index name on postgres (ux_<table>_<key>_live)
// and the "table.column" suffix sqlite puts in its message.
func uniqueKey(d ErrorDump, err error) string {
	if c := d.PGConstraint; strings.HasPrefix(c, liveIndexPrefix) && strings.HasSuffix(c, liveIndexSuffix) {
		key := strings.TrimSuffix(strings.TrimPrefix(c, liveIndexPrefix), liveIndexSuffix)
		if d.PGTable != "" && strings.HasPrefix(key, d.PGTable+"_") {
			return d.PGTable + "." + strings.TrimPrefix(key, d.PGTable+"_")
		}
		return key
	}
	msg := err.Error()
	if i := strings.Index(msg, sqliteUnique); i >= 0 {
		rest := msg[i+len(sqliteUnique):]
		if j := strings.IndexAny(rest, ", "); j >= 0 {
			rest = rest[:j]
		}
		return rest
	}
	return ""
}
