package plan_models

// Region is one of the 17 top-level Korean administrative divisions,
// romanized. The set is closed: region matching everywhere in the engine
// reduces free text to these identifiers.
type Region string

const (
	RegionSeoul     Region = "Seoul"
	RegionBusan     Region = "Busan"
	RegionDaegu     Region = "Daegu"
	RegionIncheon   Region = "Incheon"
	RegionGwangju   Region = "Gwangju"
	RegionDaejeon   Region = "Daejeon"
	RegionUlsan     Region = "Ulsan"
	RegionSejong    Region = "Sejong"
	RegionGyeonggi  Region = "Gyeonggi"
	RegionGangwon   Region = "Gangwon"
	RegionChungbuk  Region = "Chungbuk"
	RegionChungnam  Region = "Chungnam"
	RegionJeonbuk   Region = "Jeonbuk"
	RegionJeonnam   Region = "Jeonnam"
	RegionGyeongbuk Region = "Gyeongbuk"
	RegionGyeongnam Region = "Gyeongnam"
	RegionJeju      Region = "Jeju"
)

func AllRegions() []Region {
	return []Region{
		RegionSeoul, RegionBusan, RegionDaegu, RegionIncheon,
		RegionGwangju, RegionDaejeon, RegionUlsan, RegionSejong,
		RegionGyeonggi, RegionGangwon, RegionChungbuk, RegionChungnam,
		RegionJeonbuk, RegionJeonnam, RegionGyeongbuk, RegionGyeongnam,
		RegionJeju,
	}
}

// RegionSet is the result type of region resolution. Empty means
// "no constraint", never "failure".
type RegionSet map[Region]struct{}

func NewRegionSet(regions ...Region) RegionSet {
	s := make(RegionSet, len(regions))
	for _, r := range regions {
		s[r] = struct{}{}
	}
	return s
}

func (s RegionSet) Add(r Region) {
	s[r] = struct{}{}
}

func (s RegionSet) Has(r Region) bool {
	_, ok := s[r]
	return ok
}

func (s RegionSet) Merge(other RegionSet) {
	for r := range other {
		s[r] = struct{}{}
	}
}

// Slice returns the members in the canonical enumeration order so that
// callers get deterministic output.
func (s RegionSet) Slice() []Region {
	out := make([]Region, 0, len(s))
	for _, r := range AllRegions() {
		if s.Has(r) {
			out = append(out, r)
		}
	}
	return out
}
