// Package compiler turns QSGAL source text into emit-ready IR.
//
// Compilation runs in two stages:
//
//	source --Parse--> ir.Program --Analyze--> ir.IR
//
// Parse recognizes one declaration kind per line by its leading keyword
// and enforces the rule-count bounds (E020, E030). Analyze produces an
// independent IR value from a Program and never fails. Check reports
// advisory diagnostics that do not affect the outcome of a compile.
package compiler
