package teamsetup

import (
	"github.com/riskibarqy/team-manager/internal/domain/formation"
	"github.com/riskibarqy/team-manager/internal/domain/gameformat"
)

// Catalog holds the reference tables a State reads from. Order is significant:
// listings preserve it.
type Catalog struct {
	GameFormats []gameformat.GameFormat
	Formations  []formation.Formation
}

// NewCatalog copies both tables so later edits by the caller cannot leak in.
func NewCatalog(formats []gameformat.GameFormat, formations []formation.Formation) Catalog {
	c := Catalog{
		GameFormats: make([]gameformat.GameFormat, 0, len(formats)),
		Formations:  make([]formation.Formation, 0, len(formations)),
	}
	for _, f := range formats {
		c.GameFormats = append(c.GameFormats, f.Clone())
	}
	for _, f := range formations {
		c.Formations = append(c.Formations, f.Clone())
	}
	return c
}

func (c Catalog) GameFormat(formatID string) (gameformat.GameFormat, bool) {
	for _, f := range c.GameFormats {
		if f.ID == formatID {
			return f.Clone(), true
		}
	}
	return gameformat.GameFormat{}, false
}

func (c Catalog) Formation(formationID string) (formation.Formation, bool) {
	for _, f := range c.Formations {
		if f.ID == formationID {
			return f.Clone(), true
		}
	}
	return formation.Formation{}, false
}

// FormationsFor returns the formations owned by formatID in table order.
func (c Catalog) FormationsFor(formatID string) []formation.Formation {
	out := make([]formation.Formation, 0)
	for _, f := range c.Formations {
		if f.GameFormatID == formatID {
			out = append(out, f.Clone())
		}
	}
	return out
}
