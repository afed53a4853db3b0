// Package parcel provides the Parcel aggregate and its lifecycle state
// machine for the jastip domain.
//
// The package includes:
//   - Parcel: The aggregate root managing identity, billing data, and batching
//   - Status: A state machine enforcing valid lifecycle transitions
//
// Key business rules:
//   - Expected is the sole initial state: every parcel enters through a
//     pre-alert, so receipt of an unknown tracking number is rejected upstream
//     instead of silently creating a record with no known owner
//   - Billable weight and fee are only populated once a parcel is received
//   - Batch assignment requires Received or Paid status; a supplied seal
//     number routes the parcel to Bagged, otherwise to ReadyToShip
//   - Batch transit states (on truck, on vessel, arrived) belong to the Batch
//     aggregate and never rewrite a parcel's own status
package parcel
