// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the jastip system. It implements business
// logic that doesn't naturally belong to a single aggregate root.
//
// The package includes:
//   - RateCalculator: A domain service that prices parcels against a tariff
//     using volumetric weight rules
//   - ManifestBuilder: A domain service that renders a shipping batch into a
//     CSV manifest document
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
