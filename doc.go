// Package advisor provides the computations behind a personal financial
// advisor. It is designed to be stateless and deterministic: every function
// takes its inputs explicitly and returns a new value, so the same profile
// always yields the same advice.
//
// The core functionalities include:
//   - Profile: the user's financial situation and goals, validated once and
//     then passed around by value.
//   - Allocation: a rule engine mapping a profile to a five-bucket target
//     allocation with a human-readable rationale.
//   - Projection: deterministic compound growth with monthly contributions,
//     and a Monte Carlo simulator fed by an injected random source.
//   - Indicators: SMA, RSI and MACD over a price series, aligned index for
//     index with the input and explicit about values not yet available.
//   - Retirement and budget calculators.
//   - Reference data: a fund universe to compare, a quiz and a watchlist parser.
//
// This package serves as the foundational logic for the `adv` command-line
// tool. Market data and currency conversion live in the market and fx
// packages, rendering in the renderer package.
package advisor
