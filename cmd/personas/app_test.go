package main

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/historical-personas/internal/config"
	"github.com/KirkDiggler/historical-personas/internal/entities"
	perr "github.com/KirkDiggler/historical-personas/internal/errors"
	"github.com/KirkDiggler/historical-personas/internal/repositories/restorespecs"
	"github.com/KirkDiggler/historical-personas/internal/services"
)

type AppTestSuite struct {
	suite.Suite
	app    *app
	out    *bytes.Buffer
	stores *stores
	ctx    context.Context
}

func (s *AppTestSuite) SetupTest() {
	s.ctx = context.Background()
	cfg := &config.Config{Store: config.StoreMemory, RestoreTTL: restorespecs.DefaultTTL}
	st, err := openStores(s.ctx, cfg, slog.Default())
	s.Require().NoError(err)
	s.stores = st

	provider, err := services.NewProvider(&services.ProviderConfig{
		PersonaRepository: st.Personas,
		JourneyRepository: st.Journeys,
	})
	s.Require().NoError(err)

	s.out = &bytes.Buffer{}
	s.app = &app{
		provider: provider,
		personas: st.Personas,
		restores: st.Restores,
		out:      s.out,
		logger:   slog.Default(),
	}
}

func TestAppSuite(t *testing.T) {
	suite.Run(t, new(AppTestSuite))
}

func (s *AppTestSuite) generateOne(args ...string) result {
	s.out.Reset()
	s.Require().NoError(s.app.run(s.ctx, "generate", args))
	var r result
	s.Require().NoError(json.Unmarshal(s.out.Bytes(), &r))
	return r
}

func (s *AppTestSuite) TestGenerateBatch() {
	s.Require().NoError(s.app.run(s.ctx, "generate", []string{"-date", "1348", "-location", "England", "-seed", "10", "-count", "4"}))

	var results []result
	s.Require().NoError(json.Unmarshal(s.out.Bytes(), &results))
	s.Require().Len(results, 4)
	for i, r := range results {
		s.Equal(int64(10+i), r.Seed)
		s.Equal(1348, r.Persona.Year)
	}

	all, err := s.stores.Personas.List(s.ctx)
	s.Require().NoError(err)
	s.Len(all, 4)
}

func (s *AppTestSuite) TestGenerateYAML() {
	s.Require().NoError(s.app.run(s.ctx, "generate", []string{"-date", "1850", "-location", "Paris", "-seed", "3", "-format", "yaml"}))

	var r map[string]any
	s.Require().NoError(yaml.Unmarshal(s.out.Bytes(), &r))
	s.Contains(r, "persona")
}

func (s *AppTestSuite) TestShareThenRestoreOnce() {
	dir := s.T().TempDir()
	specPath := filepath.Join(dir, "spec.yaml")
	s.Require().NoError(os.WriteFile(specPath, []byte("name: Marie Dupont\ngender: female\nprofession: baker\n"), 0o600))

	s.out.Reset()
	s.Require().NoError(s.app.run(s.ctx, "share", []string{"-date", "1700", "-location", "France", "-seed", "77", "-spec", specPath}))
	id := strings.TrimSpace(s.out.String())
	s.Require().NotEmpty(id)

	r := s.generateOne("-restore", id)
	s.Equal("Marie Dupont", r.Persona.Character.Name)
	s.Equal(entities.GenderFemale, r.Persona.Character.Gender)
	s.Equal(1700, r.Persona.Year)
	s.Equal(int64(77), r.Seed)

	_, err := s.stores.Restores.Get(s.ctx, id)
	s.True(perr.IsNotFound(err), "restore spec is consumed after one use")

	again := s.generateOne("-restore", id, "-date", "1500", "-seed", "5")
	s.Equal(1500, again.Persona.Year)
}

func (s *AppTestSuite) TestOpenAndBack() {
	root := s.generateOne("-date", "1600", "-location", "England", "-seed", "8")

	s.out.Reset()
	s.Require().NoError(s.app.run(s.ctx, "open", []string{"-id", root.Persona.ID, "-member", "0", "-seed", "8"}))
	var opened result
	s.Require().NoError(json.Unmarshal(s.out.Bytes(), &opened))
	s.Require().NotNil(opened.Persona.Origin)
	s.Equal(root.Persona.ID, opened.Persona.Origin.PersonaID)
	s.NotEmpty(opened.JourneyID)
	s.Len(opened.Trail, 2)

	s.out.Reset()
	s.Require().NoError(s.app.run(s.ctx, "back", []string{"-journey", opened.JourneyID}))
	var back result
	s.Require().NoError(json.Unmarshal(s.out.Bytes(), &back))
	s.Equal(root.Persona.ID, back.Persona.ID)
	s.Len(back.Trail, 1)
}

func (s *AppTestSuite) TestShowAndList() {
	root := s.generateOne("-date", "1200", "-location", "Cairo", "-seed", "4")

	s.out.Reset()
	s.Require().NoError(s.app.run(s.ctx, "show", []string{"-id", root.Persona.ID}))
	s.Contains(s.out.String(), root.Persona.Character.Name)

	s.out.Reset()
	s.Require().NoError(s.app.run(s.ctx, "list", nil))
	s.Contains(s.out.String(), root.Persona.ID)
}

func (s *AppTestSuite) TestUnknownCommand() {
	err := s.app.run(s.ctx, "dance", nil)
	s.True(perr.IsInvalidArgument(err))
}

func TestWriteRejectsUnknownFormat(t *testing.T) {
	err := write(&bytes.Buffer{}, "xml", result{})
	assert.True(t, perr.IsInvalidArgument(err))
}

func TestLoadSpec(t *testing.T) {
	spec, err := loadSpec("")
	require.NoError(t, err)
	assert.Nil(t, spec)

	path := filepath.Join(t.TempDir(), "spec.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"name": "Hugh Tanner", "birth_year": 1300, "attributes": ["twin"]}`), 0o600))
	spec, err = loadSpec(path)
	require.NoError(t, err)
	assert.Equal(t, "Hugh Tanner", spec.Name)
	assert.Equal(t, 1300, *spec.BirthYear)
	assert.Equal(t, []string{"twin"}, spec.Attributes)

	_, err = loadSpec(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.True(t, perr.IsInvalidArgument(err))
}
