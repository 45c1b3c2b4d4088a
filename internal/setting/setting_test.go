package setting_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/historical-personas/internal/entities"
	"github.com/KirkDiggler/historical-personas/internal/setting"
)

func TestParseDate(t *testing.T) {
	testCases := []struct {
		name      string
		input     string
		year      int
		era       entities.Era
		isBC      bool
		defaulted bool
	}{
		{name: "plain year", input: "1348", year: 1348, era: entities.EraMedieval},
		{name: "bc suffix", input: "200 BC", year: -200, era: entities.EraAntiquity, isBC: true},
		{name: "bce with dots", input: "44 b.c.e.", year: -44, era: entities.EraAntiquity, isBC: true},
		{name: "leading number wins", input: "1600-1650", year: 1600, era: entities.EraRenaissance},
		{name: "last token without leading number", input: "summer of 1789", year: 1789, era: entities.EraIndustrial},
		{name: "circa prefix", input: "c. 1066", year: 1066, era: entities.EraMedieval},
		{name: "garbage", input: "long ago", year: setting.DefaultYear, era: entities.EraRenaissance, defaulted: true},
		{name: "empty", input: "", year: setting.DefaultYear, era: entities.EraRenaissance, defaulted: true},
		{name: "future", input: "2150", year: 2150, era: entities.EraFuture},
		{name: "deep past", input: "10000 BC", year: -10000, era: entities.EraPrehistory, isBC: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := setting.ParseDate(tc.input)
			assert.Equal(t, tc.year, ctx.Year)
			assert.Equal(t, tc.era, ctx.Era)
			assert.Equal(t, tc.isBC, ctx.IsBC)
			assert.Equal(t, tc.defaulted, ctx.Defaulted)
		})
	}
}

func TestParseDateSlashes(t *testing.T) {
	ctx := setting.ParseDate("3/15/1348")

	assert.Equal(t, 1348, ctx.Year)
	assert.Equal(t, 3, ctx.Month)
	assert.Equal(t, 15, ctx.Day)
	require.NotNil(t, ctx.Decade)
	assert.Equal(t, 1340, *ctx.Decade)
}

func TestParseDateMonthNames(t *testing.T) {
	testCases := []struct {
		input string
		year  int
		month int
		day   int
	}{
		{input: "March 15, 1348", year: 1348, month: 3, day: 15},
		{input: "15 March 1348", year: 1348, month: 3, day: 15},
		{input: "Sept. 1789", year: 1789, month: 9},
		{input: "june 44 BC", year: -44, month: 6},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			ctx := setting.ParseDate(tc.input)
			assert.Equal(t, tc.year, ctx.Year)
			assert.Equal(t, tc.month, ctx.Month)
			assert.Equal(t, tc.day, ctx.Day)
			assert.False(t, ctx.Defaulted)
		})
	}
}

func TestParseDateCenturies(t *testing.T) {
	ctx := setting.ParseDate("14th century")
	assert.Equal(t, 1350, ctx.Year)
	assert.Equal(t, entities.EraMedieval, ctx.Era)

	ctx = setting.ParseDate("the 2nd century BC")
	assert.Equal(t, -150, ctx.Year)
	assert.True(t, ctx.IsBC)
	assert.Equal(t, entities.EraAntiquity, ctx.Era)

	ctx = setting.ParseDate("1st Century")
	assert.Equal(t, 50, ctx.Year)
}

func TestEraBoundaries(t *testing.T) {
	assert.Equal(t, entities.EraFuture, setting.EraForYear(2020))
	assert.Equal(t, entities.EraModern, setting.EraForYear(2019))
	assert.Equal(t, entities.EraModern, setting.EraForYear(1900))
	assert.Equal(t, entities.EraIndustrial, setting.EraForYear(1700))
	assert.Equal(t, entities.EraRenaissance, setting.EraForYear(1699))
	assert.Equal(t, entities.EraMedieval, setting.EraForYear(500))
	assert.Equal(t, entities.EraAntiquity, setting.EraForYear(-2000))
	assert.Equal(t, entities.EraPrehistory, setting.EraForYear(-2001))
}

func TestResolveLocation(t *testing.T) {
	testCases := []struct {
		name   string
		input  string
		year   int
		zone   entities.CulturalZone
		region string
	}{
		{name: "england", input: "England", year: 1348, zone: entities.ZoneEuropean, region: "British Isles"},
		{name: "punctuation", input: "Kyoto, Japan", year: 1600, zone: entities.ZoneEastAsian, region: "Japan"},
		{name: "new york before york", input: "New York", year: 1900, zone: entities.ZoneNorthAmericanColonial, region: "North America"},
		{name: "pre-columbian", input: "Cahokia", year: 1100, zone: entities.ZoneNorthAmericanPreColumbian, region: "North America"},
		{name: "new guinea before guinea", input: "Papua New Guinea", year: 1900, zone: entities.ZoneOceanian, region: "Melanesia"},
		{name: "west africa", input: "Timbuktu, Mali", year: 1350, zone: entities.ZoneSubSaharanAfrican, region: "West Africa"},
		{name: "south america before america", input: "South America", year: 1700, zone: entities.ZoneSouthAmerican, region: "South America"},
		{name: "whole words only", input: "Indiana", year: 1900, zone: entities.ZoneNorthAmericanColonial, region: "North America"},
		{name: "mena", input: "Baghdad", year: 900, zone: entities.ZoneMENA, region: "Mesopotamia"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := setting.ResolveLocation(tc.input, tc.year)
			assert.True(t, ctx.Matched)
			assert.Equal(t, tc.zone, ctx.Zone)
			assert.Equal(t, tc.region, ctx.Region)
		})
	}
}

func TestResolveLocationDefaultsToEurope(t *testing.T) {
	ctx := setting.ResolveLocation("Atlantis", 1000)

	assert.False(t, ctx.Matched)
	assert.Equal(t, entities.ZoneEuropean, ctx.Zone)
	assert.Equal(t, setting.DefaultRegion, ctx.Region)
	assert.Equal(t, "Atlantis", ctx.Location)

	empty := setting.ResolveLocation("  ", 1000)
	assert.Equal(t, "Europe", empty.Location)
}

func TestResolve(t *testing.T) {
	ctx := setting.Resolve("1348", "England")

	assert.Equal(t, 1348, ctx.Year)
	assert.Equal(t, entities.EraMedieval, ctx.Era)
	assert.Equal(t, entities.ZoneEuropean, ctx.Zone)
	assert.Equal(t, "England", ctx.Location)
}
