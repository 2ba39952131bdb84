package common

import (
	uuid "github.com/nu7hatch/gouuid"
)

// GenUUID returns a random (v4) uuid, used to tag a session's log entries.
func GenUUID() string {
	// uuid.NewV4() only fails if crypto/rand does; keep trying.
	for {
		if id, err := uuid.NewV4(); err == nil {
			return id.String()
		}
	}
}
