// Package clilog provides the small leveled-printing helpers the
// colorlock CLI uses instead of reaching for a structured logging
// library: a puzzle solver's output is a handful of human-facing lines,
// not a service's log stream.
package clilog
