package catalog_test

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/historical-personas/internal/clients/catalog"
	"github.com/KirkDiggler/historical-personas/internal/entities"
	perr "github.com/KirkDiggler/historical-personas/internal/errors"
)

type CatalogTestSuite struct {
	suite.Suite
	catalog *catalog.Catalog
}

func (s *CatalogTestSuite) SetupSuite() {
	c, err := catalog.LoadEmbedded()
	s.Require().NoError(err)
	s.catalog = c
}

func TestCatalogSuite(t *testing.T) {
	suite.Run(t, new(CatalogTestSuite))
}

func (s *CatalogTestSuite) TestEveryZoneHasNames() {
	for _, zone := range entities.CulturalZones {
		set, ok := s.catalog.Names(zone, 1500, "")
		s.Require().True(ok, "zone %s", zone)
		s.NotEmpty(set.Male, "zone %s", zone)
		s.NotEmpty(set.Female, "zone %s", zone)
	}
}

func (s *CatalogTestSuite) TestNamesSelectsPeriodList() {
	medieval, ok := s.catalog.Names(entities.ZoneEuropean, 1300, "")
	s.Require().True(ok)
	s.Contains(medieval.Male, "Aldric")

	later, ok := s.catalog.Names(entities.ZoneEuropean, 1700, "")
	s.Require().True(ok)
	s.Contains(later.Male, "Thomas")
}

func (s *CatalogTestSuite) TestNamesKeyFallsBackToDefault() {
	noble, ok := s.catalog.Names(entities.ZoneEuropean, 1300, "noble")
	s.Require().True(ok)
	s.Contains(noble.Surnames, "de Montfort")

	set, ok := s.catalog.Names(entities.ZoneSouthAsian, 1300, "noble")
	s.Require().True(ok)
	s.Contains(set.Surnames, "Sharma")
}

func (s *CatalogTestSuite) TestNameLayouts() {
	eastAsian, _ := s.catalog.Names(entities.ZoneEastAsian, 1600, "")
	s.True(eastAsian.SurnameFirst)

	oceanian, _ := s.catalog.Names(entities.ZoneOceanian, 1600, "")
	s.True(oceanian.NoSurname)
}

func (s *CatalogTestSuite) TestDiasporaRespectsPeriod() {
	s.Empty(s.catalog.Diaspora(entities.ZoneOceanian, 1700))
	s.Len(s.catalog.Diaspora(entities.ZoneOceanian, 1850), 1)
}

func (s *CatalogTestSuite) TestProfessions() {
	s.Contains(s.catalog.Professions(entities.EraMedieval, "Noble"), "knight")
	s.Contains(s.catalog.Professions(entities.EraModern, "middle class"), "teacher")
	s.Empty(s.catalog.Professions(entities.EraMedieval, "Working Class"))
	s.NotEmpty(s.catalog.DomesticProfessions(entities.EraRenaissance))
}

func (s *CatalogTestSuite) TestStartingPackage() {
	pkg := s.catalog.AssembleStartingPackage("Blacksmith", "Commoner")
	s.Empty(pkg.Note)
	s.Equal("smithing-hammer", pkg.Equipped[entities.SlotTool].ID)
	s.Len(pkg.Inventory, 3)

	classDefault := s.catalog.AssembleStartingPackage("Cartographer", "Merchant")
	s.NotEmpty(classDefault.Note)
	s.Equal("coin-purse", classDefault.Equipped[entities.SlotAccessory].ID)

	fallback := s.catalog.AssembleStartingPackage("Cartographer", "Unknown")
	s.NotEmpty(fallback.Note)
	s.Len(fallback.Inventory, 2)
	s.Empty(fallback.Equipped)
}

func (s *CatalogTestSuite) TestMarkingsFilterByZoneAndYear() {
	oceanian := s.catalog.Markings(entities.ZoneOceanian, 1500)
	ids := make([]string, 0, len(oceanian))
	for _, m := range oceanian {
		ids = append(ids, m.ID)
	}
	s.Contains(ids, "ta-moko")
	s.NotContains(ids, "sailor-anchor")
	s.NotContains(ids, "henna")

	s.Equal(0.5, s.catalog.MarkingChance(entities.ZoneOceanian))
	s.Equal(0.04, s.catalog.MarkingChance(entities.ZoneEuropean))
}

func (s *CatalogTestSuite) TestIdeologiesAndBeliefs() {
	ancient := s.catalog.Ideologies(-500)
	for _, i := range ancient {
		s.NotEqual("revolutionary", i.ID)
	}

	ideology, ok := s.catalog.FindIdeology("revolutionary")
	s.True(ok)
	s.Equal("Revolutionary", ideology.Name)

	_, ok = s.catalog.FindBelief("progress")
	s.True(ok)
	for _, b := range s.catalog.Beliefs(1000) {
		s.NotEqual("progress", b.ID)
	}
}

func (s *CatalogTestSuite) TestFeverIsAlwaysAvailable() {
	for _, zone := range entities.CulturalZones {
		for _, year := range []int{-10000, 0, 1348, 2500} {
			found := false
			for _, d := range s.catalog.Diseases() {
				if d.ID == "fever" && d.AvailableIn(zone, year) {
					found = true
				}
			}
			s.True(found, "zone %s year %d", zone, year)
		}
	}
}

func (s *CatalogTestSuite) TestLanguageAndPalette() {
	lang, ok := s.catalog.Language(entities.ZoneEuropean, 1348)
	s.Require().True(ok)
	s.Equal("Middle English", lang.Primary)

	s.NotEmpty(s.catalog.Palette(entities.ZoneNorthAmericanColonial).Skin)
	s.NotEmpty(s.catalog.Garments(entities.EraFuture))
	s.Equal("sumptuous", s.catalog.Quality(entities.WealthNoble))
}

func TestLoadRejectsUnknownEpidemicDisease(t *testing.T) {
	fsys := fstest.MapFS{
		"names.yaml":       {Data: []byte("zones: []")},
		"professions.yaml": {Data: []byte("general: {}")},
		"equipment.yaml":   {Data: []byte("roles: {}")},
		"markings.yaml":    {Data: []byte("markings: []")},
		"ideologies.yaml":  {Data: []byte("ideologies: []")},
		"diseases.yaml": {Data: []byte(`
diseases:
  - {id: fever, name: Fever, prevalence: 1}
epidemics:
  - {disease: plague, name: Black Death}
`)},
		"languages.yaml":  {Data: []byte("languages: []")},
		"appearance.yaml": {Data: []byte("builds: []")},
	}

	_, err := catalog.Load(fsys)
	require.Error(t, err)
	assert.True(t, perr.IsInvalidArgument(err))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := catalog.Load(fstest.MapFS{})
	assert.Error(t, err)
}
