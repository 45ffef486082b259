package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates a missing or invalid credential.
var ErrUnauthorized = errors.New("unauthorized")

// ErrUnknownCurrency indicates a currency code with no reference profile.
// A nisab threshold is never defaulted to zero when this occurs.
var ErrUnknownCurrency = errors.New("unsupported currency")

// ErrUnknownOrganization indicates a charity organization ID with no directory entry.
var ErrUnknownOrganization = errors.New("unsupported organization")

// ErrNothingToPay indicates an attempt to start a payment for a zero zakat amount.
var ErrNothingToPay = errors.New("no zakat amount due")

// ErrOrganizationRequired indicates a payment confirmation without a selected organization.
var ErrOrganizationRequired = errors.New("organization selection required")

// ErrOrganizationCurrencyMismatch indicates the chosen organization does not accept
// the payment session's currency.
var ErrOrganizationCurrencyMismatch = errors.New("organization currency mismatch")

// ErrCreditScoreTooLow indicates a financing application rejected by the credit gate.
var ErrCreditScoreTooLow = errors.New("credit score below threshold")

// ErrUpstreamFailure indicates an external collaborator (credit bureau, market data,
// payment gateway) was unreachable or returned an error.
var ErrUpstreamFailure = errors.New("upstream service failure")

// ErrGatewayTimeout indicates the payment gateway call exceeded its deadline.
// The payment attempt is failed, never silently retried.
var ErrGatewayTimeout = errors.New("payment gateway timeout")
