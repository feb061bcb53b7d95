// Package instrumentation holds the per-run timing and counter state a
// driver needs to report progress, as an explicit struct rather than the
// module-level globals the original mtv.py used for the same purpose
// (timers.py's timings/starts dicts, and mtv.py's counter_max).
package instrumentation
