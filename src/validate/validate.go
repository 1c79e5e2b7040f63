// Package validate implements spec.md §4.7: post-processing a
// normalized record with permissive date coercion and the sentinel-text
// checks that turn a parsed-but-empty reply into a typed failure.
// Grounded on async43/parser/dates.py and async43/exceptions.py,
// using github.com/araddon/dateparse for the permissive parse since no
// port of dateutil.parser exists in the retrieved corpus.
package validate

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"

	"github.com/devl00p/async43/src/model"
	"github.com/devl00p/async43/src/normalize"
	"github.com/devl00p/async43/src/werrors"
)

// CoerceDates parses each raw date string on rec in place. A naive
// timestamp (no zone offset in the source text) is assumed UTC; a
// string that fails to parse is left untouched, per spec §4.7 step 1.
//
// spec.md describes the coercion as yearfirst=true, dayfirst=false,
// which disagrees with async43/parser/dates.py's dayfirst=true; this
// follows spec.md where the two conflict.
func CoerceDates(rec *model.Record) {
	rec.Dates.CreatedAt = coerce(rec.Dates.CreatedRaw)
	rec.Dates.UpdatedAt = coerce(rec.Dates.UpdatedRaw)
	rec.Dates.ExpiresAt = coerce(rec.Dates.ExpiresRaw)
}

func coerce(raw string) *time.Time {
	if raw == "" {
		return nil
	}
	t, err := dateparse.ParseIn(raw, time.UTC, dateparse.PreferMonthFirst(true))
	if err != nil {
		return nil
	}
	t = t.UTC()
	return &t
}

// Validate runs the §4.7 step-2 checks over the raw reply text and the
// materialized record, returning a typed failure when the reply
// explicitly says the domain doesn't exist, reports a transient
// registry error, or normalized to nothing.
func Validate(rec *model.Record) error {
	for _, marker := range normalize.NoSuchRecordLabels {
		if strings.Contains(rec.RawText, marker) {
			return werrors.DomainNotFound("registry reported no matching record for " + rec.Domain)
		}
	}
	for _, marker := range normalize.TempErrorLabels {
		if strings.Contains(rec.RawText, marker) {
			return werrors.Internal("registry reported a transient error for " + rec.Domain)
		}
	}
	if rec.IsEmpty() {
		return werrors.DomainNotFound("no fields could be extracted for " + rec.Domain)
	}
	return nil
}
