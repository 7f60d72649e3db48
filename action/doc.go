// Package action models the action descriptor file (action.yml) that
// describes a packaged automation unit: its identity, branding, typed
// input/output parameters, and execution strategy. It round-trips the
// descriptor between disk and a typed in-memory representation: optional
// fields absent from a document stay absent in memory and are omitted
// again on write.
package action
