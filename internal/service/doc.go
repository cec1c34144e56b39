// Package service contains the application use cases. It orchestrates the
// domain types and the store interfaces (internal/store) to fulfil requests
// made on behalf of an authenticated user.
//
// GardenService is the main entry point. It enforces ownership: a user may
// only read, update or remove gardens they co-own. Checks that must agree
// with the write that follows run in the same transaction as that write, via
// store.RunInTransaction and GardenStore.WithTx.
//
// Errors:
//   - ErrNotOwned is returned unchanged so the HTTP layer can answer 403
//   - domain validation errors are returned unchanged
//   - everything else is wrapped in a GardenServiceError that keeps the
//     store sentinel (store.ErrNotFound, store.ErrBadRequest) reachable
//     through errors.Is
//
// The package depends on store interfaces only, never on a concrete database
// implementation.
package service
