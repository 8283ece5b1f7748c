// Package auth guards the secretboot diagnostic endpoints with bearer
// token authentication.
//
// The /envz environment dump is operator-facing and must not be open to
// the pod network, so it requires a JWT signed with a key the operator
// provisions through the same secret channel as everything else (the
// ENVZ_SIGNING_KEY entry of the secrets file). When no key is
// configured the guarded endpoints are disabled entirely.
package auth
