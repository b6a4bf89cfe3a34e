// package services implements the validation layer between presentation
// and persistence.
//
// Every write to the catalog passes through one of [UserService],
// [TitleService] or [WatchlistService]: input presence, enum folding,
// cross-entity existence checks and the partial-update merge policy all
// live here. Repositories below never validate; front ends above only
// render. Each call is a single synchronous pass to the record store.
// The check-then-write sequences (existence before insert, uniqueness
// before update) are not wrapped in a transaction, so two concurrent
// writers can validate against stale state. That gap is inherited from
// the hosted-table origin of the design and left as documented.
package services
