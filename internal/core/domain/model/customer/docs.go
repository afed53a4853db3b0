// Package customer provides the Customer aggregate for the jastip domain.
//
// A customer is a parcel recipient at the destination region. The aggregate
// manages identity, contact data, the short label code printed on parcels,
// and the address-lock rule: once a customer's address is locked, address and
// region become immutable except through a privileged administrator edit.
//
// Customers reference parcels weakly. Removing a customer never cascades to
// parcels; downstream reporting tolerates dangling customer references.
package customer
