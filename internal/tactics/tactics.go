// Package tactics registers the built-in targeting policies.
package tactics

import (
	"github.com/vovakirdan/fleetsim/internal/combat"
	"github.com/vovakirdan/fleetsim/internal/registry"
)

// Policy names accepted by --policy.
const (
	Self  = "self"
	Enemy = "enemy"
)

func init() {
	registry.Register(registry.PolicyInfo{
		Name:        Self,
		Description: "every ship strikes itself once per turn",
	}, func(registry.Deps) combat.TargetPolicy {
		return combat.SelfTargeting{}
	})

	registry.Register(registry.PolicyInfo{
		Name:        Enemy,
		Description: "every ship strikes a random ship of another fleet",
	}, func(d registry.Deps) combat.TargetPolicy {
		return combat.EnemyTargeting{Roller: d.Roller}
	})
}
