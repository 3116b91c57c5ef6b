// SPDX-License-Identifier: MIT

// Package ingest reads directed edge lists from flat text sources.
//
// Format
//
//   - One edge per line: "source target", both base-10 non-negative integers.
//   - Tokens are separated by any run of whitespace, ',' or ';'.
//   - Lines starting with a comment prefix ('#' and '%' by default) are
//     counted in Result.Comments and ignored; blank lines are ignored.
//   - Any other line that does not hold exactly two valid IDs is malformed:
//     it is counted in Result.Skipped, logged at debug level, and never fails
//     the read. WithExtraColumns accepts and ignores trailing columns such as
//     timestamps or weights.
//   - gzip-compressed input is detected by its magic bytes and decoded
//     transparently, so SNAP ".txt.gz" dumps load as-is.
//
// Errors
//
//   - ErrIO              the source cannot be opened or read (wraps the cause).
//   - core.ErrEmptyGraph zero valid edges were parsed.
//   - ctx.Err()          the WithContext context was cancelled mid-read.
package ingest
