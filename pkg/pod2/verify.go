package pod2

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// VerifyAll verifies a batch of independently constructed PODs
// concurrently, grounded on the example pack's errgroup-bounded fan-out
// (ashita-ai-akashi's BackfillScoring). Verification only reads each
// immutable Pod, so no synchronization beyond the error group's own is
// needed; the returned error names the index of the first failing POD
// the error group reports, which is the first failure to finish, not
// necessarily the lowest failing index.
func VerifyAll(pods []Pod) error {
	g, _ := errgroup.WithContext(context.Background())
	for i, p := range pods {
		i, p := i, p
		g.Go(func() error {
			if !p.Verify() {
				return fmt.Errorf("pod2: pod %d failed verification", i)
			}
			return nil
		})
	}
	return g.Wait()
}
