// Package keyspace computes the composite partition and sort keys that map
// the logical config identity (app, environment, screen, key) onto the
// table's two-part key scheme.
//
// The encoding is deterministic and unescaped: component values are
// guaranteed by format validation to use only [a-z0-9_], so the '#'
// separator can never appear inside a component.
package keyspace

import "fmt"

// PartitionKey returns the partition key for an app namespace.
func PartitionKey(app string) string {
	return "APP#" + app
}

// SortKey returns the exact-match sort key for a single entry.
func SortKey(environment, screen, key string) string {
	return fmt.Sprintf("ENV#%s#SCREEN#%s#KEY#%s", environment, screen, key)
}

// SortKeyPrefix returns the begins_with prefix that selects every screen
// and key within an environment, enabling the one-query read path.
func SortKeyPrefix(environment string) string {
	return "ENV#" + environment
}
