package services

import (
	"regexp"
	"strings"

	"dongseon/internal/models/plan_models"
	"dongseon/pkg/utils"
)

type RegionServiceInterface interface {
	// Normalize resolves free-text place mentions to canonical regions.
	// An empty set means "no region constraint", not failure.
	Normalize(query string) plan_models.RegionSet
	ListAll() []plan_models.Region
}

// RegionResolverConfig carries the alias/macro tables and the fuzzy
// acceptance threshold. The defaults mirror common Korean usage; both
// tables and the threshold are tunable, not behavior to hardcode.
type RegionResolverConfig struct {
	Aliases        map[plan_models.Region][]string
	Macros         map[string][]plan_models.Region
	FuzzyThreshold int
}

func DefaultRegionResolverConfig() RegionResolverConfig {
	return RegionResolverConfig{
		FuzzyThreshold: 85,
		Aliases: map[plan_models.Region][]string{
			plan_models.RegionSeoul:     {"seoul-si", "seoul special city", "seoul city"},
			plan_models.RegionBusan:     {"busan-si", "busan metropolitan city", "pusan"},
			plan_models.RegionDaegu:     {"daegu-si", "daegu metropolitan city", "taegu"},
			plan_models.RegionIncheon:   {"incheon-si", "incheon metropolitan city", "inchon"},
			plan_models.RegionGwangju:   {"gwangju-si", "gwangju metropolitan city", "kwangju"},
			plan_models.RegionDaejeon:   {"daejeon-si", "daejeon metropolitan city", "taejon"},
			plan_models.RegionUlsan:     {"ulsan-si", "ulsan metropolitan city"},
			plan_models.RegionSejong:    {"sejong-si", "sejong special self-governing city"},
			plan_models.RegionGyeonggi:  {"gyeonggi-do", "gyeonggido", "kyonggi"},
			plan_models.RegionGangwon:   {"gangwon-do", "gangwondo", "kangwon"},
			plan_models.RegionChungbuk:  {"chungcheongbuk-do", "chungcheongbukdo", "north chungcheong"},
			plan_models.RegionChungnam:  {"chungcheongnam-do", "chungcheongnamdo", "south chungcheong"},
			plan_models.RegionJeonbuk:   {"jeollabuk-do", "jeollabukdo", "north jeolla"},
			plan_models.RegionJeonnam:   {"jeollanam-do", "jeollanamdo", "south jeolla"},
			plan_models.RegionGyeongbuk: {"gyeongsangbuk-do", "gyeongsangbukdo", "north gyeongsang"},
			plan_models.RegionGyeongnam: {"gyeongsangnam-do", "gyeongsangnamdo", "south gyeongsang"},
			plan_models.RegionJeju:      {"jeju-do", "jejudo", "jeju island", "jeju special self-governing province"},
		},
		Macros: map[string][]plan_models.Region{
			"capital area":       {plan_models.RegionSeoul, plan_models.RegionGyeonggi, plan_models.RegionIncheon},
			"capital region":     {plan_models.RegionSeoul, plan_models.RegionGyeonggi, plan_models.RegionIncheon},
			"sudogwon":           {plan_models.RegionSeoul, plan_models.RegionGyeonggi, plan_models.RegionIncheon},
			"greater seoul":      {plan_models.RegionSeoul, plan_models.RegionGyeonggi, plan_models.RegionIncheon},
			"yeongnam":           {plan_models.RegionBusan, plan_models.RegionDaegu, plan_models.RegionUlsan, plan_models.RegionGyeongbuk, plan_models.RegionGyeongnam},
			"honam":              {plan_models.RegionGwangju, plan_models.RegionJeonbuk, plan_models.RegionJeonnam},
			"chungcheong":        {plan_models.RegionDaejeon, plan_models.RegionSejong, plan_models.RegionChungbuk, plan_models.RegionChungnam},
			"buulgyeong":         {plan_models.RegionBusan, plan_models.RegionUlsan, plan_models.RegionGyeongnam},
			"east coast":         {plan_models.RegionGangwon, plan_models.RegionGyeongbuk},
			"gangwon area":       {plan_models.RegionGangwon},
			"jeju area":          {plan_models.RegionJeju},
		},
	}
}

type RegionService struct {
	cfg RegionResolverConfig
}

func NewRegionService(cfg RegionResolverConfig) RegionServiceInterface {
	if cfg.FuzzyThreshold <= 0 {
		cfg.FuzzyThreshold = DefaultRegionResolverConfig().FuzzyThreshold
	}
	return &RegionService{cfg: cfg}
}

func (r *RegionService) ListAll() []plan_models.Region {
	return plan_models.AllRegions()
}

var tokenSeparators = regexp.MustCompile(`[,\|/·]+`)

func tokenizeQuery(q string) []string {
	q = tokenSeparators.ReplaceAllString(q, " ")
	return strings.Fields(q)
}

// Normalize resolves in four tiers; each tier runs only when the previous
// found nothing. Macro expansion is the only tier that can yield more than
// one region from a single keyword.
func (r *RegionService) Normalize(query string) plan_models.RegionSet {
	found := plan_models.NewRegionSet()
	lower := strings.ToLower(query)

	// 1) exact containment of a canonical name
	for _, canon := range plan_models.AllRegions() {
		if strings.Contains(lower, strings.ToLower(string(canon))) {
			found.Add(canon)
		}
	}
	if len(found) > 0 {
		return found
	}

	// 2) macro-region keywords
	for macro, expands := range r.cfg.Macros {
		if strings.Contains(lower, macro) {
			for _, reg := range expands {
				found.Add(reg)
			}
		}
	}
	if len(found) > 0 {
		return found
	}

	// 3) alias table
	for canon, aliases := range r.cfg.Aliases {
		for _, alias := range aliases {
			if strings.Contains(lower, alias) {
				found.Add(canon)
				break
			}
		}
	}
	if len(found) > 0 {
		return found
	}

	// 4) fuzzy token match against canonical names
	for _, token := range tokenizeQuery(lower) {
		if len([]rune(token)) < 2 {
			continue
		}
		best := plan_models.Region("")
		bestScore := 0
		for _, canon := range plan_models.AllRegions() {
			score := utils.FuzzyRatio(token, string(canon))
			if score > bestScore {
				bestScore = score
				best = canon
			}
		}
		if bestScore >= r.cfg.FuzzyThreshold {
			found.Add(best)
		}
	}

	return found
}
