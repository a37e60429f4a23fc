package workflow

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bsm/redislock"

	"bitbucket.org/kuhldata/merchdash_backend/config"
)

var ErrImportInProgress = errors.New("an import for this record type is already running")

// obtainImportLock serializes imports per record type. Two concurrent
// imports of the same type could interleave their delete and insert
// phases; the lock turns the second one into a clean client error.
func obtainImportLock(ctx context.Context, recordType RecordType) (*redislock.Lock, error) {
	locker := config.GetRedisLock()
	if locker == nil {
		return nil, errors.New("service not ready (redis lock not initialized)")
	}
	lock, err := locker.Obtain(ctx, fmt.Sprintf("import:%s", recordType), 2*time.Minute, nil)
	if err == redislock.ErrNotObtained {
		return nil, ErrImportInProgress
	}
	if err != nil {
		return nil, err
	}
	return lock, nil
}
