// Package secret provides a small, dependency-light secret resolution layer.
//
// It supports:
//   - Strict environment expansion (see ExpandStrict)
//   - Pluggable secret providers (see Provider + Registry)
//   - Resolving secret references in configuration values (see Resolver)
//
// References use the prefix "secretref:":
//   - Full value:  secretref:file:DB_PASSWORD
//   - Vault KV v2: secretref:vault:myapp/config#db_password
//   - Inline use:  Bearer secretref:env:API_TOKEN
//
// The server uses this layer to resolve sensitive configuration values
// (such as the /envz signing key) at startup, after the secrets file
// bootstrap has run.
package secret
