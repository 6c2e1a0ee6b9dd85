// Package repository holds the per-entity stores: GORM-backed tables for
// bookings, profiles, roles and managed salons, and Redis-backed keyed
// collections for reviews, favorites and revoked sessions.
package repository

import "errors"

var (
	ErrNotFound  = errors.New("repository: record not found")
	ErrDuplicate = errors.New("repository: record already exists")
)
