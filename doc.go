// Package monarch provides the data model and encodings for Monarch Money
// investment portfolio exports.
//
// The core functionalities include:
//   - Portfolio Data Model: Go types mirroring the aggregate-holdings payload
//     returned by the Monarch Money GraphQL API.
//   - Flattening: Projecting the nested payload (securities and their
//     per-account holdings) into flat HoldingRecord rows suitable for
//     tabular consumption.
//   - Encodings: Reading and writing the raw portfolio JSON, and exporting
//     holding records as CSV.
//
// This package serves as the foundational logic for the `mm` command-line
// tool, which fetches the portfolio through the mmapi package and renders
// reports through the renderer package.
package monarch
