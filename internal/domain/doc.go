// Package domain contains the garden aggregate: gardens, their owners and
// beds, the typed GardenUpdate patch, and the validation errors shared by
// the store, service and API layers. It has no infrastructure dependencies.
package domain
