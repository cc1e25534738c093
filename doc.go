// Package pennywise provides the functions and types for managing a
// single-user personal finance ledger. It is designed to be local-first,
// auditable, and extensible, ensuring users have full control and transparency
// over their financial data.
//
// The core functionalities include:
//   - Account Registry: Named accounts (wallet, bank, ncmc) with at most one
//     default per type, soft deletion, and default promotion.
//   - Transaction Store: Four independent collections (income, expenses,
//     transfers, debts) kept sorted newest-first and persisted after every
//     mutation to a simple key-value Storage.
//   - Balance Engine: Stateless folds computing per-source and per-account
//     balances from the raw collections.
//   - Debt Lifecycle: Full and partial settlements that update the debt and
//     post a matching synthetic income or expense record.
//   - Migration: Seeding of default accounts and backfilling of account ids
//     on legacy data recorded before accounts existed.
//   - Import/Export: A single JSON document holding all collections, with
//     strict validation and all-or-nothing import.
//
// This package serves as the foundational logic for the `pw` command-line
// tool, ensuring that all operations are consistent and based on a single
// source of truth.
package pennywise
