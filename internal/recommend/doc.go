// Package recommend decides which items a user should carry before their next
// appointment.
//
// # Pipeline
//
// A single call to Engine.Infer runs these stages in order:
//
//   - select: the earliest event starting at or after the reference time is
//     "current", the one after it is "next"
//   - continuation: next is folded in only when the worn shoe matches the
//     default shoe of next and differs from the default shoe of current
//   - score: eligible, non-default rules of the included activities are summed
//     per item name
//   - assemble: fixed items, shoe items, default activity items, ranked extras
//     and encounter items are merged, first occurrence wins
//
// The engine reads from a RuleStore and a ScheduleStore and writes nothing. It
// holds no mutable state and is safe for concurrent use.
//
// # Usage
//
//	eng := recommend.NewEngine(log, ruleStore, scheduleStore, recommend.DefaultConfig())
//	res, err := eng.Infer(ctx, recommend.Request{UserID: 7, ShoeType: "formal"})
package recommend
