// Package fintrack provides the core types and operations of a single-user
// personal finance ledger. It is designed to be local-first and auditable:
// all data lives in one flat store the user fully owns.
//
// The core functionalities include:
//   - Ledger Management: Recording income and expense transactions in an
//     insertion-ordered, append-only sequence with stable integer identifiers.
//   - Data Persistence: Hydrating the ledger from, and flushing it to, a
//     pluggable Store. Two stores are provided: a human-readable JSON file
//     (the default) and a SQLite database. Both rewrite the whole store on
//     every save.
//   - Reporting: Computing income/expense totals and the running balance,
//     and exporting point-in-time snapshots as CSV artifacts.
//
// This package serves as the foundational logic for the `fin` command-line
// tool; everything user-facing (flags, prompting, rendering) lives in the
// cmd package.
package fintrack
