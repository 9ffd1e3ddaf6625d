// Package errs provides the error taxonomy shared by the fuel delivery service.
//
// Every error type follows the same shape: a sentinel (ErrObjectNotFound,
// ErrForbidden, ErrInvalidTransition, ...), a struct carrying details, constructors
// with and without a cause, and an Unwrap method returning the sentinel so callers
// classify failures with errors.Is.
//
// Kinds surfaced to actors:
//   - ObjectNotFoundError: an entity id did not resolve
//   - ForbiddenError: the acting principal does not own the resource
//   - InvalidTransitionError: an order or agent status precondition was not met
//   - ValueIsInvalidError, ValueIsRequiredError, ValueIsOutOfRangeError: malformed input
//   - VersionIsInvalidError: a write lost an optimistic-lock race against a newer version
package errs
