// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Albert Shakirov

// Package client implements the cache daemon runtime.
//
// It wires the local cache store, the remote service adapter, the background
// queue replay job and the optional diagnostics endpoint into a single
// process lifecycle.
package client
