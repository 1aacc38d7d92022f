package domain

import "net/url"

// User: Codeforces user.info 응답의 사용자 프로필
// 쿼리마다 새로 조회하며, 현재 쿼리 수명 이상으로 캐싱하지 않는다.
type User struct {
	Handle                  string `json:"handle"`
	FirstName               string `json:"firstName,omitempty"`
	LastName                string `json:"lastName,omitempty"`
	Country                 string `json:"country,omitempty"`
	City                    string `json:"city,omitempty"`
	Organization            string `json:"organization,omitempty"`
	Contribution            int    `json:"contribution"`
	Rank                    string `json:"rank"`
	Rating                  int    `json:"rating"`
	MaxRank                 string `json:"maxRank"`
	MaxRating               int    `json:"maxRating"`
	LastOnlineTimeSeconds   int64  `json:"lastOnlineTimeSeconds"`
	RegistrationTimeSeconds int64  `json:"registrationTimeSeconds"`
	FriendOfCount           int    `json:"friendOfCount"`
	Avatar                  string `json:"avatar"`
	TitlePhoto              string `json:"titlePhoto"`
}

// RankColors: Codeforces 랭크(티어) 이름별 표시 색상 매핑
var RankColors = map[string]string{
	"newbie":                    "#808080",
	"pupil":                     "#008000",
	"specialist":                "#03a89e",
	"expert":                    "#0000ff",
	"candidate master":          "#aa00aa",
	"master":                    "#ff8c00",
	"international master":      "#ff8c00",
	"grandmaster":               "#ff0000",
	"international grandmaster": "#ff0000",
	"legendary grandmaster":     "#ff0000",
}

// RankColor: 유저 랭크 이름에 해당하는 표시 색상을 반환한다. (미등록 랭크는 회색)
func (u *User) RankColor() string {
	if u == nil {
		return "#808080"
	}
	if color, ok := RankColors[u.Rank]; ok {
		return color
	}
	return "#808080"
}

// ProfileURL: 유저의 Codeforces 프로필 페이지 링크를 반환한다.
func (u *User) ProfileURL() string {
	if u == nil {
		return ""
	}
	return "https://codeforces.com/profile/" + url.PathEscape(u.Handle)
}
