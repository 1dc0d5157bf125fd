package services

import (
	"strings"

	"dongseon/internal/models/plan_models"
)

type CandidateFilterInterface interface {
	// Filter applies exclusion, category and region predicates in order,
	// preserving candidate order. regionTokens are the words of one
	// compound location mention ("Busan", or "Busan Haeundae" split in
	// two); multiple tokens narrow, they never widen.
	Filter(candidates []plan_models.VenueCandidate, regionTokens []string, category plan_models.Category, excludeNames []string) []plan_models.VenueCandidate

	// FilterAny is Filter with alternative-region semantics: the tokens
	// are a resolved region set ("capital area" expands to three), and a
	// candidate passes the region gate by matching any one of them.
	FilterAny(candidates []plan_models.VenueCandidate, regionAlternatives []string, category plan_models.Category, excludeNames []string) []plan_models.VenueCandidate

	// Classify maps a free-text category string to the coarse enum.
	Classify(raw string) plan_models.Category
}

type CandidateFilter struct{}

func NewCandidateFilter() CandidateFilterInterface {
	return &CandidateFilter{}
}

var categoryKeywords = []struct {
	category plan_models.Category
	keywords []string
}{
	// theme parks before plain attractions: "amusement park" must not
	// classify as attraction via "park"
	{plan_models.CategoryThemePark, []string{"theme park", "amusement", "테마파크", "놀이공원"}},
	{plan_models.CategoryLodging, []string{"hotel", "hostel", "resort", "guesthouse", "pension", "lodging", "숙소", "호텔"}},
	{plan_models.CategoryDining, []string{"restaurant", "dining", "eatery", "bbq", "food", "식당", "맛집"}},
	{plan_models.CategoryCafe, []string{"cafe", "coffee", "bakery", "dessert", "tearoom", "카페", "빵집"}},
	{plan_models.CategoryAttraction, []string{"attraction", "museum", "park", "beach", "temple", "palace", "market", "tower", "trail", "관광", "관광지", "산책로"}},
}

func (f *CandidateFilter) Classify(raw string) plan_models.Category {
	lower := strings.ToLower(raw)
	for _, entry := range categoryKeywords {
		for _, kw := range entry.keywords {
			if strings.Contains(lower, kw) {
				return entry.category
			}
		}
	}
	return plan_models.CategoryOther
}

func (f *CandidateFilter) Filter(
	candidates []plan_models.VenueCandidate,
	regionTokens []string,
	category plan_models.Category,
	excludeNames []string,
) []plan_models.VenueCandidate {
	return filterWith(candidates, regionTokens, category, excludeNames, matchesRegion)
}

func (f *CandidateFilter) FilterAny(
	candidates []plan_models.VenueCandidate,
	regionAlternatives []string,
	category plan_models.Category,
	excludeNames []string,
) []plan_models.VenueCandidate {
	return filterWith(candidates, regionAlternatives, category, excludeNames, matchesAnyRegion)
}

func filterWith(
	candidates []plan_models.VenueCandidate,
	regionTokens []string,
	category plan_models.Category,
	excludeNames []string,
	regionMatch func(regionText string, targets []string) bool,
) []plan_models.VenueCandidate {

	excluded := make(map[string]struct{}, len(excludeNames))
	for _, n := range excludeNames {
		excluded[strings.ToLower(strings.TrimSpace(n))] = struct{}{}
	}

	targets := make([]string, 0, len(regionTokens))
	for _, t := range regionTokens {
		if norm := normalizeRegionPart(t); norm != "" {
			targets = append(targets, norm)
		}
	}

	out := make([]plan_models.VenueCandidate, 0, len(candidates))
	for _, cand := range candidates {
		if strings.TrimSpace(cand.Name) == "" {
			// malformed record, skipped
			continue
		}
		if _, ok := excluded[strings.ToLower(cand.Name)]; ok {
			continue
		}
		if category != "" && category != cand.Category.FilterBucket() {
			continue
		}
		if !regionMatch(cand.RegionText, targets) {
			continue
		}
		out = append(out, cand)
	}
	return out
}

// matchesRegion is deliberately asymmetric in query arity. A single-token
// query passes when any address sub-token matches (a broad "Busan" query
// must not be defeated by district suffixes); a multi-token query is a
// conjunction and requires every token to appear in the address text.
func matchesRegion(regionText string, targets []string) bool {
	if len(targets) == 0 {
		return true
	}

	docParts := splitRegionText(regionText)
	if len(docParts) == 0 {
		return false
	}

	if len(targets) == 1 {
		target := targets[0]
		for _, dp := range docParts {
			if strings.Contains(dp, target) || strings.Contains(target, dp) {
				return true
			}
		}
		return false
	}

	joined := strings.Join(docParts, " ")
	for _, target := range targets {
		if !strings.Contains(joined, target) {
			return false
		}
	}
	return true
}

// matchesAnyRegion is the disjunctive counterpart for resolved region
// sets: each target is a full region name standing on its own, so any
// single match accepts.
func matchesAnyRegion(regionText string, targets []string) bool {
	if len(targets) == 0 {
		return true
	}
	for _, target := range targets {
		if matchesRegion(regionText, []string{target}) {
			return true
		}
	}
	return false
}

// administrative suffix phrases stripped before comparison, longest first
var regionSuffixPhrases = []string{
	"special self-governing province",
	"special self-governing city",
	"metropolitan city",
	"special city",
	"province",
}

var regionTokenSuffixes = []string{"-si", "-do", "-gu", "-gun", "-dong", "-eup", "-myeon", "-city"}

func splitRegionText(text string) []string {
	lower := strings.ToLower(text)
	lower = strings.NewReplacer(",", " ", "|", " ", "/", " ").Replace(lower)
	for _, phrase := range regionSuffixPhrases {
		lower = strings.ReplaceAll(lower, phrase, " ")
	}

	parts := make([]string, 0, 4)
	for _, raw := range strings.Fields(lower) {
		if norm := normalizeRegionPart(raw); norm != "" {
			parts = append(parts, norm)
		}
	}
	return parts
}

func normalizeRegionPart(part string) string {
	part = strings.ToLower(strings.TrimSpace(part))
	// a bare "city" word carries no region information
	if part == "city" {
		return ""
	}
	for _, suffix := range regionTokenSuffixes {
		if strings.HasSuffix(part, suffix) && len(part) > len(suffix) {
			part = strings.TrimSuffix(part, suffix)
			break
		}
	}
	return strings.TrimSpace(part)
}
