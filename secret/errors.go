package secret

import "errors"

var (
	// ErrMissingVariables indicates a ${VAR} reference to an unset variable.
	ErrMissingVariables = errors.New("secret: missing required variables")

	// ErrProviderNotRegistered indicates a reference named an unknown provider.
	ErrProviderNotRegistered = errors.New("secret: provider is not registered")

	// ErrSecretNotFound indicates a provider could not find the referenced secret.
	ErrSecretNotFound = errors.New("secret: not found")

	// ErrEmptySecret indicates a provider resolved an empty value in strict mode.
	ErrEmptySecret = errors.New("secret: provider returned empty value")
)
