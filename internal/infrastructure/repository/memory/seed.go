package memory

import (
	"github.com/riskibarqy/team-manager/internal/domain/team"
	"github.com/riskibarqy/team-manager/internal/domain/teamsetup"
)

const TeamIDDemo = "team-demo"

// SeedCatalog returns the built-in reference catalog used when no database is configured.
func SeedCatalog() teamsetup.Catalog {
	return teamsetup.DefaultCatalog()
}

func SeedTeams() []team.Team {
	return []team.Team{
		{
			ID:          TeamIDDemo,
			Name:        "Riverside Juniors",
			Description: "Demo team for local development",
		},
	}
}
