// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the listener runtime.
//
// It chains the pipeline stages (login, event subscription, event logging)
// into a single process lifecycle: load config → authenticate → subscribe →
// log.
package client
