package progress

import (
	"time"

	"github.com/BrugadaSyndrome/bslogger"
)

// Reporter is the single consumer of a progress channel. Signals carry no identity, the reporter only counts them.
type Reporter struct {
	heartBeat time.Duration
	logger    bslogger.Logger
	step      int
	total     int
}

func NewReporter(name string, total int) *Reporter {
	return &Reporter{
		heartBeat: 30 * time.Second,
		logger:    bslogger.NewLogger(name, bslogger.Normal, nil),
		step:      10,
		total:     total,
	}
}

// SetHeartBeat changes how often the reporter logs while no percentage step is crossed.
func (r *Reporter) SetHeartBeat(heartBeat time.Duration) {
	r.heartBeat = heartBeat
}

// Run drains signals until the channel is closed and returns how many were received.
func (r *Reporter) Run(signals <-chan struct{}) int {
	heartBeat := time.NewTicker(r.heartBeat)
	defer heartBeat.Stop()

	startTime := time.Now()
	completed := 0
	nextPercent := r.step

	for {
		select {
		case _, more := <-signals:
			if !more {
				r.logger.Infof("Completed %d/%d in %s", completed, r.total, time.Since(startTime))
				return completed
			}
			completed++
			if percent := Percent(completed, r.total); percent >= nextPercent {
				r.logger.Infof("%3d%% [%d/%d]", percent, completed, r.total)
				nextPercent = (percent/r.step + 1) * r.step
			}

		case _ = <-heartBeat.C:
			r.logger.Infof("Completed %d/%d after %s", completed, r.total, time.Since(startTime))
		}
	}
}

// Percent returns completed as a whole percentage of total.
func Percent(completed int, total int) int {
	if total <= 0 {
		return 100
	}
	return completed * 100 / total
}
