package appearance_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/historical-personas/internal/clients/catalog"
	"github.com/KirkDiggler/historical-personas/internal/entities"
	"github.com/KirkDiggler/historical-personas/internal/noise"
	"github.com/KirkDiggler/historical-personas/internal/services/appearance"
)

func newService(t *testing.T) appearance.Service {
	t.Helper()
	c, err := catalog.LoadEmbedded()
	require.NoError(t, err)
	return appearance.NewService(&appearance.ServiceConfig{Appearance: c, Markings: c})
}

func TestAssembleFillsEveryField(t *testing.T) {
	svc := newService(t)

	for seed := int64(1); seed <= 25; seed++ {
		a, err := svc.Assemble(noise.NewSeeded(seed), &appearance.AssembleInput{
			Zone:   entities.ZoneEuropean,
			Era:    entities.EraMedieval,
			Year:   1348,
			Gender: entities.GenderFemale,
			Age:    30,
			Wealth: entities.WealthPoor,
			Stats:  entities.Stats{Strength: 10, Constitution: 10, Intelligence: 10},
		})
		require.NoError(t, err)

		assert.NotEmpty(t, a.Build)
		assert.NotEmpty(t, a.Height)
		assert.NotEmpty(t, a.Skin)
		assert.True(t, strings.HasPrefix(a.Palette.Skin, "#"))
		require.Len(t, a.Garments, 3)
		for _, g := range a.Garments {
			assert.True(t, strings.HasPrefix(g, "patched "), g)
		}
		assert.Nil(t, a.Glasses, "young poor medieval characters never wear spectacles")
	}
}

func TestNoSpectaclesBeforeTheyExist(t *testing.T) {
	svc := newService(t)

	for seed := int64(1); seed <= 50; seed++ {
		a, err := svc.Assemble(noise.NewSeeded(seed), &appearance.AssembleInput{
			Zone:   entities.ZoneMENA,
			Era:    entities.EraMedieval,
			Year:   1100,
			Gender: entities.GenderMale,
			Age:    60,
			Wealth: entities.WealthNoble,
			Stats:  entities.Stats{Intelligence: 18},
		})
		require.NoError(t, err)
		assert.Nil(t, a.Glasses)
	}
}

func TestModernReaderCanWearGlasses(t *testing.T) {
	svc := newService(t)

	found := false
	for seed := int64(1); seed <= 60 && !found; seed++ {
		a, err := svc.Assemble(noise.NewSeeded(seed), &appearance.AssembleInput{
			Zone:   entities.ZoneNorthAmericanColonial,
			Era:    entities.EraModern,
			Year:   1960,
			Gender: entities.GenderNonBinary,
			Age:    45,
			Wealth: entities.WealthModest,
			Stats:  entities.Stats{Intelligence: 16},
		})
		require.NoError(t, err)
		if a.Glasses != nil {
			found = true
			assert.Equal(t, "horn-rimmed glasses", a.Glasses.Style)
		}
	}
	assert.True(t, found)
}

func TestOceanianMarkingsComeFromZone(t *testing.T) {
	svc := newService(t)

	marked := 0
	for seed := int64(1); seed <= 60; seed++ {
		a, err := svc.Assemble(noise.NewSeeded(seed), &appearance.AssembleInput{
			Zone:   entities.ZoneOceanian,
			Era:    entities.EraRenaissance,
			Year:   1500,
			Gender: entities.GenderMale,
			Age:    25,
		})
		require.NoError(t, err)
		for _, m := range a.Markings {
			marked++
			assert.Contains(t, []string{"ta-moko", "pe-a", "battle-scar"}, m.ID)
		}
	}
	assert.Greater(t, marked, 0)
}
