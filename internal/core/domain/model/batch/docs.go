// Package batch provides the Batch aggregate for grouped outbound shipments.
//
// A batch aggregates parcels for one departure, identified by a human-chosen
// code. Its transit status advances strictly forward (Open, OnTruck,
// OnVessel, Arrived) and gates parcel assignment: a batch accepts parcels in
// any non-terminal state and refuses them once Arrived. Batch transit never
// rewrites the statuses of member parcels.
package batch
