package calendar

// The twelve major (jie) terms mark sexagenary month boundaries; the
// twelve minor (qi) terms fall mid-month. Names follow the convention
// used by the lunar-go tables.
var majorTermNames = map[string]bool{
	"立春": true, // Li Chun, start of spring
	"惊蛰": true, // Jing Zhe
	"清明": true, // Qing Ming
	"立夏": true, // Li Xia, start of summer
	"芒种": true, // Mang Zhong
	"小暑": true, // Xiao Shu
	"立秋": true, // Li Qiu, start of autumn
	"白露": true, // Bai Lu
	"寒露": true, // Han Lu
	"立冬": true, // Li Dong, start of winter
	"大雪": true, // Da Xue
	"小寒": true, // Xiao Han
}

// IsMajorTerm reports whether the named term is a month-boundary (jie)
// term.
func IsMajorTerm(name string) bool {
	return majorTermNames[name]
}
