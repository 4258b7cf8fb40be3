// Copyright 2026 The SSI Dashboard Authors
// SPDX-License-Identifier: Apache-2.0

// Package dashboardui implements the terminal dashboard for the SSI
// demo. Built on bubbletea (Elm architecture): the framework's runtime
// is the event producer. A dedicated input-reader goroutine and the
// tick timer are multiplexed into one ordered message channel consumed
// by the single update/view loop, with raw mode and the alt screen
// acquired on entry and restored on every exit path.
//
// The model is deliberately small: an active tab and the immutable
// [issuance.Result] computed before the program starts. No identity or
// ledger work happens inside the loop; rendering is pure string
// composition over cached values, so the UI stays responsive no matter
// what the collaborators did at startup.
//
// Data flow:
//
//	[issuance.Result] (precomputed, immutable)
//	        |
//	    [Model] <- bubbletea event loop (keys + 200ms tick)
//	        |
//	  [terminal output]
package dashboardui
