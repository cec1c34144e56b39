// Package postgres provides PostgreSQL-specific implementations for the data
// storage interfaces defined in the internal/store package.
//
// It contains the partial update compiler, which turns an ordered field
// payload into a `col = $n` SET clause, and PostgresGardenStore, which
// reassembles the garden aggregate (garden row, owners, beds) from the
// normalized gardens, users_gardens and beds tables. The schema lives in
// migrations/ and is applied with goose.
package postgres
