// Package store implements the table-oriented record store backing the
// entity repositories.
//
// The [Store] interface mirrors a hosted table API: insert with a
// store-assigned key, equality-filtered select, case-insensitive substring
// select, update and delete by key, and one joined query for genre-filtered
// watchlist lookups. [SQLStore] implements it over database/sql for the
// sqlite3 and postgres drivers; rows travel as [Record] maps so the store
// stays ignorant of entity shapes. The store never validates domain input;
// that is the service layer's job.
package store
