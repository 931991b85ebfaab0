package session

import "context"

// RunLoop repeats Run while batch mode is on and each cycle both played an
// episode and advanced the counter. The directory is re-scanned every
// iteration, so files added or removed between episodes are honored.
func (s *Session) RunLoop(ctx context.Context, batch bool) error {
	for {
		result, err := s.Run(ctx)
		if err != nil {
			return err
		}
		if !batch || !result.Ran || !result.Advanced {
			return nil
		}
		if ctx.Err() != nil {
			return nil
		}
	}
}
