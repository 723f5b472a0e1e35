// Package supabase implements the persistence ports on a Supabase
// project. Each repository maps one PostgREST table and round-trips
// rows as JSON through its own row struct, so the persistence shape
// stays decoupled from the domain entities the same way the DynamoDB
// adapter's item structs do. Result sets are small (a roster of
// hundreds, circles of dozens), so ordering and paging happen in
// process after the table read.
package supabase

import (
	"fmt"

	supa "github.com/supabase-community/supabase-go"
)

const (
	tableCelebrities      = "celebrities"
	tableNodes            = "nodes"
	tableEdges            = "edges"
	tableOutreach         = "outreach"
	tableSnapshotVersions = "snapshot_versions"
)

// NewClient opens a PostgREST client against a Supabase project using
// the service role key, which bypasses row level security for the
// backend's own tables.
func NewClient(projectURL, serviceKey string) (*supa.Client, error) {
	client, err := supa.NewClient(projectURL, serviceKey, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create supabase client: %w", err)
	}
	return client, nil
}
