// Package db selects a storage driver from the runtime profile.
package db

import (
	"github.com/pkg/errors"

	"github.com/hrygo/hydromate/internal/profile"
	"github.com/hrygo/hydromate/store"
	"github.com/hrygo/hydromate/store/db/postgres"
	"github.com/hrygo/hydromate/store/db/sqlite"
)

// NewDriver creates a storage driver based on the profile's Driver field.
func NewDriver(profile *profile.Profile) (store.Driver, error) {
	switch profile.Driver {
	case "sqlite":
		return sqlite.NewDB(profile)
	case "postgres":
		return postgres.NewDB(profile)
	default:
		return nil, errors.Errorf("unknown db driver %q", profile.Driver)
	}
}
