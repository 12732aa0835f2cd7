// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metadata is the static type descriptor table consulted by the sync
// core. A [TypeDescriptor] declares, per class, whether the class takes part
// in synchronization, which of its properties are parent relations (and how
// the parent is fetched), which are excluded from the cascade walk, and which
// named accessors it exposes.
//
// Descriptors are registered once at startup; every lookup afterwards is a
// map read. Runtime class names always come from the host persistence layer
// (see uow.UnitOfWork.RealClassOf), never from wrapper types.
package metadata
