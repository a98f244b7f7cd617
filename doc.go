// Package household provides the computational core of a household
// finance dashboard. It derives, from an immutable snapshot of raw
// records (members, accounts, transactions, assets, goals, vesting
// schedules and budgets), the metrics a dashboard displays.
//
// The core functionalities include:
//   - Aggregation: base totals such as monthly income, spending,
//     net worth and savings rate.
//   - Vesting: vested/unvested amounts and cliff releases for
//     equity-style compensation schedules.
//   - Cash-Flow Forecasting: a month-by-month balance trajectory
//     combining recurring flows, vesting inflows and goal outflows.
//   - Net-Worth Projection: multi-year, per-category projections
//     under named growth scenarios, with milestone detection.
//   - Health Scoring: a composite financial-health score built from
//     five independently capped sub-scores.
//   - Budget Tracking: allocated versus actual spending per category,
//     with synthesized budgets when none are configured.
//   - Alerts & Recommendations: threshold rules over the other
//     components' outputs.
//
// Every calculator is a pure, synchronous function of a Snapshot: no
// I/O, no shared state, and byte-identical outputs for identical
// inputs. Persistence and rendering live at the edges: the snapshot
// JSONL codec in this package, the markdown renderers in the renderer
// package, and the hcs command line tool.
package household
