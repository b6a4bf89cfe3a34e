// Package models defines the data model for the watchlist manager.
//
// Three entities make up the catalog: [User], [Title] and [WatchlistEntry],
// a many-to-many association between the first two carrying per-pair
// status, rating and review. The enum types [Status] and [TitleType] fold
// case-insensitive input to their canonical lowercase form, and the
// *Update structs express partial updates with pointer fields so that an
// empty string and "not supplied" stay distinguishable.
package models
