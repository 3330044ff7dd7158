// Package postgres implements the store interfaces using a PostgreSQL
// database as the storage backend.
//
// Appends are single transactional INSERTs and per-account views are
// ORDER BY queries, so the "read everything, rewrite everything" pattern
// of the original file-based design (and its lost-update race) does not
// exist here. Tables are created by the goose migrations in migrations/;
// re-running them never truncates existing data.
package postgres
