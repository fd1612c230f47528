package constants

// Daftar ruang seminar hasil PKL. Penjadwalan hanya menerima ruang dari
// daftar ini, bukan teks bebas.
var RuangSeminar = []string{
	"Ruang Rapat Prodi",
	"10.2 Twin Tower",
	"10.3 Twin Tower",
	"Ruang 108 FIK 2",
	"Ruang Lab Sains Data",
	"Ruang 202 FIK 1",
	"Ruang 304 FIK 1",
}

func IsRuangSeminarValid(ruang string) bool {
	for _, r := range RuangSeminar {
		if r == ruang {
			return true
		}
	}
	return false
}
