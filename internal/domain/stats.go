package domain

// UserStats: 제출 목록에서 파생되는 유저별 통계
// 집계기가 매 호출마다 처음부터 다시 계산하며, 외부에서 수정하지 않는다.
type UserStats struct {
	SolveCount    int     `json:"solveCount"`    // 통과(OK) 제출 수 (같은 문제 중복 포함)
	AcRate        float64 `json:"acRate"`        // 통과율 (%)
	AvgRating     float64 `json:"avgRating"`     // 통과한 문제의 평균 난이도
	ActiveDays    int     `json:"activeDays"`    // 제출이 있었던 달력 날짜 수 (UTC+8)
	NightOwlCount int     `json:"nightOwlCount"` // 심야(22시-06시) 제출 수
	AvgSolveSpeed float64 `json:"avgSolveSpeed"` // 연속 통과 간 평균 간격 (분)
	TotalScore    int     `json:"totalScore"`    // 통과한 문제 난이도의 합
}

// RatingBand: 난이도 점수 구간과 표시용 티어 메타데이터
type RatingBand struct {
	Min   int    `json:"min"`
	Max   int    `json:"max"`
	Label string `json:"label"`
	Color string `json:"color"`
}

// RatingBands: Codeforces 난이도 티어 구간 정의 (오름차순 고정)
var RatingBands = []RatingBand{
	{Min: 0, Max: 1199, Label: "Newbie", Color: "#808080"},
	{Min: 1200, Max: 1399, Label: "Pupil", Color: "#008000"},
	{Min: 1400, Max: 1599, Label: "Specialist", Color: "#03a89e"},
	{Min: 1600, Max: 1899, Label: "Expert", Color: "#0000ff"},
	{Min: 1900, Max: 2099, Label: "Candidate Master", Color: "#aa00aa"},
	{Min: 2100, Max: 2299, Label: "Master", Color: "#ff8c00"},
	{Min: 2300, Max: 2399, Label: "International Master", Color: "#ff8c00"},
	{Min: 2400, Max: 2599, Label: "Grandmaster", Color: "#ff0000"},
	{Min: 2600, Max: 2999, Label: "International Grandmaster", Color: "#ff0000"},
	{Min: 3000, Max: 5000, Label: "Legendary Grandmaster", Color: "#ff0000"},
}

// UnratedBand: 난이도가 부여되지 않은 문제용 별도 구간
var UnratedBand = RatingBand{Min: 0, Max: 0, Label: "Unrated", Color: "#808080"}

// BandFor: 난이도 점수가 속하는 티어 구간을 반환한다. (nil이면 Unrated)
func BandFor(rating *int) RatingBand {
	if rating == nil {
		return UnratedBand
	}
	for _, band := range RatingBands {
		if *rating >= band.Min && *rating <= band.Max {
			return band
		}
	}
	// 정의된 구간을 벗어난 난이도는 최상위 티어로 취급
	return RatingBands[len(RatingBands)-1]
}

// RatingBucket: 티어 구간별 제출 분포 (시도/해결/실패)
// Solved는 contestId+index로 중복 제거한 해결 문제 수이고,
// Attempted/Failed는 제출 단위 카운트다. 세 값을 항상 함께 계산해
// 표시 필터 전환 시 재계산이 필요 없다.
type RatingBucket struct {
	Band      RatingBand `json:"band"`
	Unrated   bool       `json:"unrated,omitempty"`
	Attempted int        `json:"attempted"`
	Solved    int        `json:"solved"`
	Failed    int        `json:"failed"`
}

// ResultFilter 는 타입이다.
type ResultFilter string

// ResultFilter 상수 목록.
const (
	// ResultFilterAll 는 상수다.
	ResultFilterAll      ResultFilter = "all"
	ResultFilterAccepted ResultFilter = "accepted"
	ResultFilterRejected ResultFilter = "rejected"
)

// IsValid 는 동작을 수행한다.
func (f ResultFilter) IsValid() bool {
	switch f {
	case ResultFilterAll, ResultFilterAccepted, ResultFilterRejected:
		return true
	default:
		return false
	}
}

// Dimension: 랭킹/PK 비교에 사용하는 통계 차원
type Dimension string

// Dimension 상수 목록.
const (
	// DimensionSolveCount 는 상수다.
	DimensionSolveCount Dimension = "solveCount"
	DimensionTotalScore Dimension = "totalScore"
	DimensionAcRate     Dimension = "acRate"
	DimensionAvgRating  Dimension = "avgRating"
	DimensionActiveDays Dimension = "activeDays"
	DimensionNightOwl   Dimension = "nightOwl"
	DimensionSpeed      Dimension = "speed"
)

// Dimensions: 지원하는 모든 랭킹 차원 (표시 순서 고정)
var Dimensions = []Dimension{
	DimensionSolveCount,
	DimensionTotalScore,
	DimensionAcRate,
	DimensionAvgRating,
	DimensionActiveDays,
	DimensionNightOwl,
	DimensionSpeed,
}

// IsValid 는 동작을 수행한다.
func (d Dimension) IsValid() bool {
	for _, dim := range Dimensions {
		if d == dim {
			return true
		}
	}
	return false
}

// ValueOf: 통계에서 해당 차원의 수치를 꺼낸다.
func (d Dimension) ValueOf(stats UserStats) float64 {
	switch d {
	case DimensionSolveCount:
		return float64(stats.SolveCount)
	case DimensionTotalScore:
		return float64(stats.TotalScore)
	case DimensionAcRate:
		return stats.AcRate
	case DimensionAvgRating:
		return stats.AvgRating
	case DimensionActiveDays:
		return float64(stats.ActiveDays)
	case DimensionNightOwl:
		return float64(stats.NightOwlCount)
	case DimensionSpeed:
		return stats.AvgSolveSpeed
	default:
		return 0
	}
}
