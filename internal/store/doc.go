// Package store defines interfaces for data persistence operations.
// These interfaces abstract the underlying data storage mechanism from
// the application's core logic. The garden aggregate is exposed through
// GardenStore; implementations execute their SQL through DBTX so the same
// store can run against a connection pool or a caller-owned transaction.
package store
