package sqldb

import "errors"

// ErrNoRows is the driver-agnostic "no result" error. Implementations map
// their native sentinel (pgx.ErrNoRows, sql.ErrNoRows) onto it at Scan time.
var ErrNoRows = errors.New("sqldb: no rows in result set")
