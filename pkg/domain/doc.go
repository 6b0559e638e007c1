// Package domain contains the core entities shared across the link auditor:
// notebook audit results and the persisted audits that group them into runs.
// The types are free of infrastructure concerns so that the CLI, the storage
// layer and the API can all use them.
package domain
