// Package etfpulse provides the functions and types to pull, enrich and
// analyze the published holdings of covered-call ETFs, and to screen the
// universe of weekly-options underlyings for wheel-strategy candidates.
//
// The core functionalities include:
//   - Option Code Decoding: extracting the expiration date, call/put side
//     and strike price embedded in compact option identifiers such as
//     "BWXT251219C00195000".
//   - Holding Classification: labelling every portfolio line as a plain
//     stock position, a covered call, a cash-secured put, or a long option.
//   - Holdings Tables: decoding the CSV files published by ETF issuers,
//     filtering out cash and collateral lines, and encoding the enriched
//     table back to CSV with every original column preserved.
//   - Weekly Screener: combining the CBOE available-weeklys list with
//     per-underlying market metrics (price, trend, implied volatility,
//     valuation) into a single screening table.
//
// This package serves as the foundational logic for the `etp` command-line
// tool; the cmd package and the provider subpackages (kurv, cboe, yfin)
// are thin layers on top of it.
package etfpulse
