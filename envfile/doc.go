// Package envfile parses shell-export style secrets files.
//
// A secrets file is an ordered sequence of text lines written by an
// external secret-injection agent (typically a Vault Agent sidecar):
//
//	# database credentials
//	export DB_PASSWORD="s3cr3t"
//	export ENV=k8s-vault
//	PLAIN_KEY=value
//
// Parsing is a pure function from file contents to ordered key/value
// entries; applying the entries to configuration state is the caller's
// job (see package bootstrap). Blank lines and # comments are skipped,
// the optional "export " prefix is tolerated, values split on the first
// "=", and surrounding single or double quotes are stripped.
package envfile
