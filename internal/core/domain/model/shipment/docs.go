// Package shipment contains the shipment-tracking aggregate and its value
// objects. Shipment is the aggregate root and the consistency boundary: it is
// created once via NewShipment and mutated only by RecordMovement, which
// returns a new aggregate instance rather than modifying the receiver.
//
// All value objects (TrackingNumber, Status, Phone, Address, Contact,
// PackageDimensions, DeclaredValue) are immutable and self-validating:
// factories either return a valid instance or an error carrying the
// human-readable reason. Restore* factories reconstruct instances from
// already-trusted persisted data and are reserved for the mapping layer.
package shipment
