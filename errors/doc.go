/*
Package errors defines the error codes returned to clients and the helpers
used to wrap them.

Every error returned by a handler should wrap one of the root errors
created with Register. The root error decides the ABCI code of the
response, the wrapping layers add context:

	return errors.Wrapf(errors.ErrNotFound, "multisig %X", id)

The first wrap records a stack trace. Format an error with %v to get its
message and the place it was created, or with %+v to get the whole trace.

Validation collects all problems at once, one per field:

	var errs error
	errs = errors.AppendField(errs, "Threshold", validateThreshold(t))
	errs = errors.AppendField(errs, "Owners", validateOwners(o))
	return errs
*/
package errors
