package players

import (
	"github.com/janpfeifer/antsGo/internal/presets"
	. "github.com/janpfeifer/antsGo/internal/state"
	"k8s.io/klog/v2"
)

// PlanPlayer deploys the ants of a fixed plan at their scheduled turns.
// Deployments scheduled for a turn already past are issued at the next call.
type PlanPlayer struct {
	pending presets.Plan
}

// NewPlanPlayer creates a player for the plan. The plan is not changed.
func NewPlanPlayer(plan presets.Plan) *PlanPlayer {
	return &PlanPlayer{pending: plan.Sorted()}
}

// Play implements Player.
func (p *PlanPlayer) Play(game *Game) (failed []error) {
	for len(p.pending) > 0 && p.pending[0].Turn <= game.Turn() {
		d := p.pending[0]
		p.pending = p.pending[1:]
		if err := game.Deploy(d.Ant, d.At); err != nil {
			klog.V(2).Infof("Turn %d: failed to deploy %s at %s: %v", game.Turn(), d.Ant, d.At, err)
			failed = append(failed, err)
		}
	}
	return
}

// Pending returns the number of deployments not issued yet.
func (p *PlanPlayer) Pending() int { return len(p.pending) }
