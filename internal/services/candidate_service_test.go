package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dongseon/internal/models/plan_models"
)

func candidate(name, regionText string, cat plan_models.Category) plan_models.VenueCandidate {
	return plan_models.VenueCandidate{Name: name, RegionText: regionText, Category: cat}
}

func TestClassify(t *testing.T) {
	f := NewCandidateFilter()

	tests := []struct {
		raw  string
		want plan_models.Category
	}{
		{"Korean BBQ restaurant", plan_models.CategoryDining},
		{"roastery coffee bar", plan_models.CategoryCafe},
		{"national museum", plan_models.CategoryAttraction},
		{"amusement park", plan_models.CategoryThemePark},
		{"hanok guesthouse", plan_models.CategoryLodging},
		{"식당", plan_models.CategoryDining},
		{"카페", plan_models.CategoryCafe},
		{"something else entirely", plan_models.CategoryOther},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, f.Classify(tt.raw), "raw %q", tt.raw)
	}
}

func TestFilter_SingleTokenRegionUsesORSemantics(t *testing.T) {
	f := NewCandidateFilter()

	cands := []plan_models.VenueCandidate{
		candidate("Haeundae Beach", "Busan Metropolitan City, Haeundae-gu", plan_models.CategoryAttraction),
	}

	// a broad "Busan" query must not be defeated by district suffixes
	got := f.Filter(cands, []string{"Busan"}, "", nil)
	require.Len(t, got, 1)
	assert.Equal(t, "Haeundae Beach", got[0].Name)
}

func TestFilter_MultiTokenRegionUsesANDSemantics(t *testing.T) {
	f := NewCandidateFilter()

	cands := []plan_models.VenueCandidate{
		candidate("Somewhere in Busan", "Busan Metropolitan City", plan_models.CategoryAttraction),
		candidate("Haeundae Beach", "Busan Metropolitan City, Haeundae-gu", plan_models.CategoryAttraction),
	}

	got := f.Filter(cands, []string{"Busan", "Haeundae"}, "", nil)
	require.Len(t, got, 1)
	assert.Equal(t, "Haeundae Beach", got[0].Name)
}

func TestFilterAny_RegionAlternativesUseORSemantics(t *testing.T) {
	f := NewCandidateFilter()

	cands := []plan_models.VenueCandidate{
		candidate("Gyeongbokgung", "Seoul, Jongno-gu", plan_models.CategoryAttraction),
		candidate("Chinatown", "Incheon, Jung-gu", plan_models.CategoryAttraction),
		candidate("Haeundae Beach", "Busan, Haeundae-gu", plan_models.CategoryAttraction),
	}

	// a resolved macro set: each region stands on its own
	got := f.FilterAny(cands, []string{"Seoul", "Gyeonggi", "Incheon"}, "", nil)
	require.Len(t, got, 2)
	assert.Equal(t, "Gyeongbokgung", got[0].Name)
	assert.Equal(t, "Chinatown", got[1].Name)

	// empty alternatives still accept everything
	assert.Len(t, f.FilterAny(cands, nil, "", nil), 3)
}

func TestNormalizeRegionPart_StripsOnlyAdministrativeSuffixes(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"haeundae-gu", "haeundae"},
		{"busan-si", "busan"},
		{"goyang-city", "goyang"},
		{"city", ""},
		// a bare suffix string inside a word must survive
		{"paradisecity", "paradisecity"},
		{"electricity", "electricity"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, normalizeRegionPart(tt.in), "part %q", tt.in)
	}
}

func TestFilter_EmptyRegionsAcceptsEverything(t *testing.T) {
	f := NewCandidateFilter()

	cands := []plan_models.VenueCandidate{
		candidate("A", "Seoul", plan_models.CategoryDining),
		candidate("B", "Jeju-do", plan_models.CategoryCafe),
	}

	got := f.Filter(cands, nil, "", nil)
	assert.Len(t, got, 2)
}

func TestFilter_CategoryGate(t *testing.T) {
	f := NewCandidateFilter()

	cands := []plan_models.VenueCandidate{
		candidate("Cafe One", "Seoul", plan_models.CategoryCafe),
		candidate("Grill House", "Seoul", plan_models.CategoryDining),
		// theme parks filter into the attraction bucket
		candidate("Big Park", "Seoul", plan_models.CategoryThemePark),
	}

	got := f.Filter(cands, nil, plan_models.CategoryCafe, nil)
	require.Len(t, got, 1)
	assert.Equal(t, "Cafe One", got[0].Name)

	got = f.Filter(cands, nil, plan_models.CategoryAttraction, nil)
	require.Len(t, got, 1)
	assert.Equal(t, "Big Park", got[0].Name)
}

func TestFilter_ExcludeNames(t *testing.T) {
	f := NewCandidateFilter()

	cands := []plan_models.VenueCandidate{
		candidate("Keep Me", "Seoul", plan_models.CategoryDining),
		candidate("Drop Me", "Seoul", plan_models.CategoryDining),
	}

	got := f.Filter(cands, nil, "", []string{"drop me"})
	require.Len(t, got, 1)
	assert.Equal(t, "Keep Me", got[0].Name)
}

func TestFilter_SkipsMalformedCandidates(t *testing.T) {
	f := NewCandidateFilter()

	cands := []plan_models.VenueCandidate{
		candidate("", "Seoul", plan_models.CategoryDining),
		candidate("Fine", "Seoul", plan_models.CategoryDining),
	}

	got := f.Filter(cands, nil, "", nil)
	require.Len(t, got, 1)
	assert.Equal(t, "Fine", got[0].Name)
}

func TestFilter_PreservesOrder(t *testing.T) {
	f := NewCandidateFilter()

	cands := []plan_models.VenueCandidate{
		candidate("First", "Busan Jung-gu", plan_models.CategoryDining),
		candidate("Second", "Busan Haeundae-gu", plan_models.CategoryDining),
		candidate("Third", "Busan Seo-gu", plan_models.CategoryDining),
	}

	got := f.Filter(cands, []string{"Busan"}, "", nil)
	require.Len(t, got, 3)
	assert.Equal(t, []string{"First", "Second", "Third"},
		[]string{got[0].Name, got[1].Name, got[2].Name})
}
