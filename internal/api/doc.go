// Package api handles incoming HTTP requests for the academy: request
// decoding and validation, calls into the stores and services, and
// response formatting. Handlers never expose raw store or provider
// errors; MapErrorToStatusCode and GetSafeErrorMessage translate them.
package api
