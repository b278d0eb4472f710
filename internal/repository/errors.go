package repository

import "errors"

// ErrNotFound is a repository-specific sentinel error. It is returned when a
// query that targets a single chat (get, rename, delete) matches no rows.
//
// The service layer checks for this error and translates it into the
// domain-level app_errors.ErrNotFound, so business logic never has to know
// about sql.ErrNoRows or any other driver detail.
var ErrNotFound = errors.New("repository: not found")
