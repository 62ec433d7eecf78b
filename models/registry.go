// elCons: pluggable sequencing error models for long-read consensus.
// Copyright (c) 2021 imec vzw.

// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version, and Additional Terms
// (see below).

// This program is distributed in the hope that it will be useful, but
// WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
// Affero General Public License for more details.

// You should have received a copy of the GNU Affero General Public
// License and Additional Terms along with this program. If not, see
// <https://github.com/ExaScience/elcons/blob/master/LICENSE.txt>.

package models

import (
	"fmt"
	"log"
	"sort"
	"sync"
)

// A Factory constructs a ModelConfig for a signal-to-noise ratio.
type Factory func(snr SNR) ModelConfig

/*
A Registry maps model names to factories.

A Registry is filled by a single goroutine and then sealed. After
Seal, Create and KnownNames can be called concurrently, because the
underlying map is never modified again.
*/
type Registry struct {
	sealed    bool
	factories map[string]Factory
}

// NewRegistry returns an empty, unsealed Registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

/*
Register associates each of the given names with factory.

If any of the names is already registered, Register returns an error
wrapping ErrDuplicateModel and registers none of them. Calling
Register on a sealed Registry is a programming error and panics.
*/
func (r *Registry) Register(names []string, factory Factory) error {
	if r.sealed {
		log.Panicf("registering models %v in a sealed registry", names)
	}
	for _, name := range names {
		if _, found := r.factories[name]; found {
			return fmt.Errorf("%w: %v", ErrDuplicateModel, name)
		}
	}
	for _, name := range names {
		r.factories[name] = factory
	}
	return nil
}

// Seal prevents further registrations.
func (r *Registry) Seal() {
	r.sealed = true
}

// Sealed tells whether Seal has been called.
func (r *Registry) Sealed() bool {
	return r.sealed
}

// Create constructs the named model for the given signal-to-noise
// ratio.
func (r *Registry) Create(name string, snr SNR) (ModelConfig, error) {
	factory, found := r.factories[name]
	if !found {
		return nil, fmt.Errorf("%w: %v", ErrUnknownModel, name)
	}
	if err := snr.Validate(); err != nil {
		return nil, err
	}
	return factory(snr), nil
}

// KnownNames returns all registered names in sorted order.
func (r *Registry) KnownNames() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var (
	defaultRegistry     *Registry
	defaultRegistryOnce sync.Once
)

func mustRegister(r *Registry, names []string, factory Factory) {
	if err := r.Register(names, factory); err != nil {
		log.Panic(err)
	}
}

// DefaultRegistry returns the sealed registry of all compiled-in
// models. It is built on first use.
func DefaultRegistry() *Registry {
	defaultRegistryOnce.Do(func() {
		r := NewRegistry()
		mustRegister(r, sp1c1PwNames, newSP1C1PwModel)
		mustRegister(r, sp1c1BasecallNames, newSP1C1BasecallModel)
		r.Seal()
		defaultRegistry = r
	})
	return defaultRegistry
}

// Create constructs a model from the default registry.
func Create(name string, snr SNR) (ModelConfig, error) {
	return DefaultRegistry().Create(name, snr)
}

// KnownNames returns the names in the default registry.
func KnownNames() []string {
	return DefaultRegistry().KnownNames()
}
