// WiFind Go API - Client and demo for the WiFind WiFi scan data API
// Copyright 2026 The WiFind Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/wifimapping/goapi

package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/wifimapping/goapi/internal/logging"
)

// WatchFunc registers onChange to be called whenever the file at path changes.
// config.WatchConfigFile satisfies it.
type WatchFunc func(path string, onChange func()) error

// ConfigReloadService calls reload each time the config file changes.
//
// File events are coalesced: while a reload is running, further changes
// collapse into one pending reload. A failed reload is logged and the
// previous settings stay in effect.
type ConfigReloadService struct {
	path   string
	watch  WatchFunc
	reload func() error
	logger zerolog.Logger

	mu      sync.Mutex
	watched bool
	pending chan struct{}
}

// NewConfigReloadService creates the service. Nothing is watched until Serve runs.
func NewConfigReloadService(path string, watch WatchFunc, reload func() error) *ConfigReloadService {
	return &ConfigReloadService{
		path:    path,
		watch:   watch,
		reload:  reload,
		logger:  logging.WithComponent("config-reload"),
		pending: make(chan struct{}, 1),
	}
}

// Serve implements suture.Service.
func (s *ConfigReloadService) Serve(ctx context.Context) error {
	if err := s.ensureWatching(); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-s.pending:
			if err := s.reload(); err != nil {
				s.logger.Warn().Err(err).Str("path", s.path).Msg("Config reload failed, keeping previous settings")
				continue
			}
			s.logger.Info().Str("path", s.path).Msg("Config reloaded")
		}
	}
}

// ensureWatching registers the file watch once, surviving service restarts.
func (s *ConfigReloadService) ensureWatching() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.watched {
		return nil
	}
	if err := s.watch(s.path, s.notify); err != nil {
		return fmt.Errorf("watch config file %s: %w", s.path, err)
	}
	s.watched = true
	return nil
}

func (s *ConfigReloadService) notify() {
	select {
	case s.pending <- struct{}{}:
	default:
	}
}

// String names the service in supervisor logs.
func (s *ConfigReloadService) String() string {
	return "config-reload"
}
