package registry

import (
	"context"
	"errors"

	"github.com/robfig/cron/v3"
)

// ErrInvalidSchedule is returned by RefreshOn for specs cron cannot parse.
var ErrInvalidSchedule = errors.New("invalid cache refresh schedule")

// RefreshOn purges the schema cache on the cron schedule spec (five-field
// expressions or descriptors such as "@every 5m") until ctx is cancelled.
// Use it with stores other processes write to.
func (r *Registry) RefreshOn(ctx context.Context, spec string) error {
	c := cron.New()
	if _, err := c.AddFunc(spec, func() {
		r.Invalidate()
		r.log.DebugContext(ctx, "schema cache purged")
	}); err != nil {
		return errors.Join(ErrInvalidSchedule, err)
	}
	c.Start()
	go func() {
		<-ctx.Done()
		<-c.Stop().Done()
	}()
	return nil
}
