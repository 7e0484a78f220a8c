package sweep

import (
	"github.com/lakshaymaurya-felt/baksweep/internal/scan"
	"github.com/lakshaymaurya-felt/baksweep/internal/trash"
)

// ExecuteBatch moves every candidate to the trash and reports how many
// moves succeeded and failed. Once started the batch always runs to the
// end; a failed item is counted and the next one is attempted. onItem,
// when non-nil, observes each outcome as it lands.
func ExecuteBatch(mover trash.Mover, candidates []scan.Candidate, log Logger, onItem func(i int, c scan.Candidate, err error)) (moved, failed int) {
	for i, c := range candidates {
		err := mover.Move(c.Path)
		if err != nil {
			failed++
			if log != nil {
				log.Error("could not move %s to trash: %s", c.Path, err)
			}
		} else {
			moved++
			if log != nil {
				log.Info("moved to trash: %s", c.Path)
			}
		}
		if onItem != nil {
			onItem(i, c, err)
		}
	}
	return moved, failed
}
