package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"datehound/extract"
	"datehound/locale"
)

func TestAddLocalesFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "locales.yaml")
	contents := `locales:
  german: [Januar, Februar, März, April, Mai, Juni, Juli, August, September, Oktober, November, Dezember]
  polish: [styczeń, luty, marzec, kwiecień, maj, czerwiec, lipiec, sierpień, wrzesień, październik, listopad, grudzień]
`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	loc := locale.New()
	require.NoError(t, addLocalesFromFile(loc, path))
	require.True(t, loc.HasMonthName(3, "märz"))
	require.True(t, loc.HasMonthName(10, "październik"))

	fields := extract.New(loc).Parse("14 Oktober 2022")
	require.Equal(t, 10, fields.Month)
}

func TestAddLocalesFromFileBadShape(t *testing.T) {
	path := filepath.Join(t.TempDir(), "locales.yaml")
	contents := `locales:
  broken: [only, three, months]
`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	err := addLocalesFromFile(locale.New(), path)
	require.Error(t, err)
	require.True(t, errors.Is(err, locale.ErrLocaleShape))
}

func TestAddLocalesFromFileMissing(t *testing.T) {
	err := addLocalesFromFile(locale.New(), filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestAddLocalesFromFileBadYaml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "locales.yaml")
	require.NoError(t, os.WriteFile(path, []byte("locales: [not: a: map"), 0o644))

	err := addLocalesFromFile(locale.New(), path)
	require.Error(t, err)
}
