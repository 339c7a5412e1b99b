// internal/app/bootstrap/dbdeps.go
package bootstrap

import (
	"github.com/geolearnhq/geolearn/internal/app/store/jsonstore"
)

// DBDeps holds back-end dependencies for the app. GeoLearn persists
// everything in flat JSON files, so the only dependency is the handle
// on the data directory.
type DBDeps struct {
	Files *jsonstore.DB
}
